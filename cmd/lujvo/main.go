// Command lujvo is a small interactive front end for the lujvo package: it
// reads a line of input and either composes a lujvo from a tanru (space
// separated words) or analyzes a single word, printing the result.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lojban/lujvo/lujvo"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	settings := lujvo.DefaultSettings()
	fmt.Printf("Input a tanru (multiple words) to compose, or a single word to analyze:\n")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(strings.Fields(line)) > 1 {
			form, score, _, err := lujvo.GetLujvoWithAnalytics(line, settings)
			if err != nil {
				fmt.Printf("Error: %s\n", err)
				continue
			}
			fmt.Printf("Lujvo: %s (score %d)\n", form, score)
			continue
		}
		bType, pieces, err := lujvo.AnalyzeBrivla(line, settings)
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			continue
		}
		fmt.Printf("%s: %s\n", bType, strings.Join(pieces, "-"))
	}
}
