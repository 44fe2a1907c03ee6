// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
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

package restart

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/zubairmh/llm-chess/pkg/display"
	"github.com/zubairmh/llm-chess/pkg/series"
)

func Series() *cobra.Command {
	return &cobra.Command{
		Use:   "series series-name",
		Short: "Continue a series from its last finished pair",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := series.Load(args[0])
			if err != nil {
				return err
			}

			s.View = display.Headless{}
			s.Sounder = display.Mute{}
			s.NewPlayer = display.ThinkingPlayer

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			s.Report()
			return s.Run(ctx)
		},
	}
}
