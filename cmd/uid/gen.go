//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package main

import (
	"bufio"
	"fmt"
	"time"

	"github.com/fogfish/uid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newGenCommand(cfg *Config, logger zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate unique identifiers",
		Long:  "Generate one or many unique identifiers of the given family, batches are fanned out across CPU cores.",
		RunE: func(cmd *cobra.Command, args []string) error {
			family, _ := cmd.Flags().GetString("family")
			count, _ := cmd.Flags().GetInt("count")
			workers, _ := cmd.Flags().GetInt("workers")

			engine, err := newEngine(cfg, workers)
			if err != nil {
				return err
			}
			defer engine.Close()

			at := time.Now()
			seq, err := generate(engine, family, count)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("family", family).
				Int("count", count).
				Dur("elapsed", time.Since(at)).
				Msg("batch generated")

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()
			for _, val := range seq {
				fmt.Fprintln(out, val)
			}
			return nil
		},
	}

	cmd.Flags().String("family", "uuid7", "identifier family: uuid1|uuid4|uuid7|shortid|nanoid")
	cmd.Flags().Int("count", 1, "number of identifiers to generate")
	cmd.Flags().Int("workers", 0, "worker pool size, 0 uses the configured value or logical cores")
	return cmd
}

func generate(engine *uid.Engine, family string, count int) ([]string, error) {
	switch family {
	case "uuid1":
		return render(engine.UUID1Batch(count))
	case "uuid4":
		return render(engine.UUID4Batch(count))
	case "uuid7":
		return render(engine.UUID7Batch(count))
	case "shortid":
		return engine.ShortIDBatch(count)
	case "nanoid":
		return engine.NanoIDBatch(count)
	default:
		return nil, fmt.Errorf("unknown identifier family %q", family)
	}
}

func render(seq []uid.UUID, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	val := make([]string, len(seq))
	for i, u := range seq {
		val[i] = u.String()
	}
	return val, nil
}
