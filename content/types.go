package content

import "strconv"

// Tier is one difficulty step of the catalog
type Tier struct {
	Theme string
	Words []string
}

// tierThemes is the ordered theme table, index 0 is level 1
var tierThemes = []string{
	"x86 ASSEMBLY",
	"C++ STDLIB",
	"PYTHON ASYNCIO",
	"RUST",
	"MALWARE ANALYSIS",
}

// tierFileName returns the word list file name of a zero-based tier index
func tierFileName(index int) string {
	return "tier" + strconv.Itoa(index+1) + ".txt"
}
