//go:build !colorsdebug

package colors

func assert(bool, string) {}
