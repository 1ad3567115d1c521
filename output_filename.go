package gifplot

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// NextIncrementedFilename returns the next unused incremented name for
// filename, scanning siblings on disk: "plot.gif" becomes "plot-1.gif"
// when nothing matches, or "plot-4.gif" when plot-3.gif already exists.
func NextIncrementedFilename(filename string) (string, int, error) {
	base, _, ext := parseIncrementFilename(filename)
	files, err := filepath.Glob(base + "*")
	if err != nil {
		return "", 0, err
	}

	maxNum := 0
	for _, file := range files {
		_, num, ext2 := parseIncrementFilename(file)
		if num > maxNum && ext == ext2 {
			maxNum = num
		}
	}

	maxNum++

	return fmt.Sprintf("%v-%v%v", base, maxNum, ext), maxNum, nil
}

// IncrementFilename bumps the numeric suffix of filename, inserting
// one when absent: "plot.gif" -> "plot-1.gif" -> "plot-2.gif".
func IncrementFilename(filename string) string {
	base, num, ext := parseIncrementFilename(filename)
	if base == "" && ext == "" {
		return ""
	}
	num++
	return fmt.Sprintf("%v-%v%v", base, num, ext)
}

func parseIncrementFilename(filename string) (base string, num int, ext string) {
	fileExt := filepath.Ext(filename)
	filename = strings.TrimSuffix(filename, fileExt)

	if filename == "" && fileExt != "" {
		filename, fileExt = fileExt, ""
	}

	i := len(filename) - 1
	if i < 0 {
		return "", 0, ""
	}

	for ; i >= 0; i-- {
		ch := rune(filename[i])
		if !unicode.IsDigit(ch) {
			break
		}
	}

	currentNum := 0

	digits := filename[i+1:]
	filename = filename[0 : i+1]

	// an all-digit name like "2024.gif" is a base, not a counter
	if filename == "" {
		return digits, 0, fileExt
	}

	if filename[len(filename)-1] == '-' {
		filename = filename[0 : len(filename)-1]
	}

	if n, err := strconv.Atoi(digits); err == nil {
		currentNum = n
	}

	return filename, currentNum, fileExt
}
