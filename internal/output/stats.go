package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/daxida/grs/internal/rule"
)

// FormatStatistics writes the per-rule error counts, most frequent first,
// aligned on the widest count.
func FormatStatistics(w io.Writer, counts map[rule.Rule]int) error {
	keys := lo.Keys(counts)
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	padding := 0
	for _, v := range counts {
		if n := len(strconv.Itoa(v)); n > padding {
			padding = n
		}
	}

	for _, k := range keys {
		fixable := " "
		if k.HasFix() {
			fixable = "*"
		}
		_, err := fmt.Fprintf(w, "%*d    %-4s   [%s] %s\n",
			padding, counts[k], color.RedString("%s", k.Code()),
			color.CyanString(fixable), k.Name())
		if err != nil {
			return err
		}
	}
	return nil
}
