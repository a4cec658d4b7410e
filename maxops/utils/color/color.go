// maxops/utils/color/color.go
package color

import (
	"github.com/fatih/color"
)

var (
	infoColor         = color.New(color.FgGreen)
	warningColor      = color.New(color.FgYellow, color.Bold)
	errorColor        = color.New(color.FgRed, color.Bold)
	finalSuccessColor = color.New(color.FgGreen, color.Bold)
)

func ColorInfo(s string) string {
	return infoColor.Sprint(s)
}

func ColorWarning(s string) string {
	return warningColor.Sprint(s)
}

func ColorError(s string) string {
	return errorColor.Sprint(s)
}

func ColorFinalSuccess(s string) string {
	return finalSuccessColor.Sprint(s)
}
