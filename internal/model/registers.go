package model

import "fmt"

// Register file naming. A user script call implicitly receives the caller's
// function words, so captured arguments and local words share these names.
const (
	FunWordPrefix = "FunWord"
	FunFlagPrefix = "FunFlag"
	MapVarPrefix  = "MapVar"
)

// FunWord names the n-th function word.
func FunWord(n int) string {
	return fmt.Sprintf("%s_%X", FunWordPrefix, n)
}

// FunFlag names the n-th function flag.
func FunFlag(n int) string {
	return fmt.Sprintf("%s_%X", FunFlagPrefix, n)
}

// MapVar names the n-th map variable.
func MapVar(n int) string {
	return fmt.Sprintf("%s_%X", MapVarPrefix, n)
}
