//go:build darwin

package locale

import (
	"os/exec"
	"strings"
)

// systemPreferred reads the macOS global AppleLanguages preference. GUI
// sessions often launch processes without locale environment variables set,
// so this is the only signal available there.
func systemPreferred() []string {
	out, err := exec.Command("defaults", "read", "-g", "AppleLanguages").Output()
	if err != nil {
		return nil
	}

	// Output is a plist-style array:
	//   (
	//       "en-US",
	//       "zh-Hant-TW"
	//   )
	var langs []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSuffix(line, ",")
		line = strings.Trim(line, `"`)
		if line == "" || line == "(" || line == ")" {
			continue
		}
		langs = append(langs, line)
	}
	return langs
}
