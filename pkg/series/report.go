// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package series

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/zubairmh/llm-chess/pkg/stats"
)

// Output is where reports are printed.
var Output io.Writer = os.Stdout

// ReportLines returns the lines of the series' report box.
func (series *Series) ReportLines() []string {
	state := series.State

	var lower, elo, upper float64
	if (series.SPRT != nil && series.SPRT.Legacy) || state.Penta.Pairs() == 0 {
		lower, elo, upper = state.WDL.Elo()
	} else {
		lower, elo, upper = state.Penta.Elo()
	}

	err := math.Abs(math.Max(upper-elo, elo-lower))

	lines := []string{
		fmt.Sprintf("%s vs %s", series.Players[0].Name, series.Players[1].Name),
		fmt.Sprintf("ELO   | %.2f +- %.2f (95%%)", elo, err),
	}

	if series.SPRT != nil {
		lines = append(lines, fmt.Sprintf(
			"LLR   | %.2f (%.2f, %.2f) [%.2f, %.2f]",
			series.LLR(), series.lower, series.upper, series.SPRT.Elo0, series.SPRT.Elo1,
		))
	}

	lines = append(lines,
		fmt.Sprintf(
			"GAMES | N: %d W: %d L: %d D: %d",
			state.WDL.Games(), state.WDL.Wins, state.WDL.Losses, state.WDL.Draws,
		),
		fmt.Sprintf(
			"PENTA | [%d, %d, %d, %d, %d]",
			state.Penta.LL, state.Penta.LD, state.Penta.DD, state.Penta.WD, state.Penta.WW,
		),
	)

	return lines
}

// Report prints the series' report box.
func (series *Series) Report() {
	border := color.New(color.FgCyan)

	border.Fprintf(Output, "╔%s╗\n", strings.Repeat("═", 50))
	for _, line := range series.ReportLines() {
		border.Fprint(Output, "║ ")
		fmt.Fprintf(Output, "%-48s", line)
		border.Fprintln(Output, " ║")
	}
	border.Fprintf(Output, "╚%s╝\n", strings.Repeat("═", 50))
}

// Verdict prints the outcome of the SPRT.
func (series *Series) Verdict() {
	switch verdict := series.Judge(); verdict {
	case stats.AcceptH0:
		color.New(color.FgRed, color.Bold).Fprintln(Output, verdict)
	case stats.AcceptH1:
		color.New(color.FgGreen, color.Bold).Fprintln(Output, verdict)
	default:
		color.New(color.FgYellow).Fprintf(Output, "No verdict after %d pairs\n", series.State.Pairs)
	}
}
