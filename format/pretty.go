package format

import "github.com/esimov/bunsetsu/utils"

// PrettySeparator returns sep wrapped in ANSI colors so phrase boundaries
// stand out in terminal output. An empty separator falls back to a visible
// mark.
func PrettySeparator(sep string) string {
	if sep == "" {
		sep = "▁"
	}
	return utils.DecorateText(sep, utils.SuccessMessage)
}
