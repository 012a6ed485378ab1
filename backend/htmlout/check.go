package htmlout

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/htmlstyle/core"
)

// ContainsScriptLines checks rendered output for a script fragment. The
// fragment is split into lines; the lines of r are scanned in order,
// comparing trimmed lines, and each match advances to the next fragment
// line. Lines of r in between are skipped. Returns true as soon as the last
// fragment line has matched.
func ContainsScriptLines(r io.Reader, fragment string) (bool, error) {
	lines := strings.Split(fragment, "\n")
	i := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if strings.TrimSpace(lines[i]) != strings.TrimSpace(scanner.Text()) {
			continue
		}
		if i == len(lines)-1 {
			return true, nil
		}
		i++
	}
	if err := scanner.Err(); err != nil {
		return false, core.WrapError(err, core.EINTERNAL, "cannot read rendered output")
	}
	return false, nil
}
