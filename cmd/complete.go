package cmd

import (
	"github.com/etnz/arbfolio/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the arbf command line.
func Completion() *complete.Command {
	exports := predict.Or(predict.Files("*.csv"), predict.Files("*.json"), predict.Dirs("*"))
	categories := predict.Set{"Swap", "Trade", "Transfer", "Airdrop", "Ignore", "Unknown", "Simple", "TwoAsset", "Debt", "UnknownSwap"}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"import": {Flags: map[string]complete.Predictor{
				"i":     exports,
				"jsonl": predict.Nothing,
			}},
			"fmt": {Flags: map[string]complete.Predictor{
				"check": predict.Nothing,
			}},
			"classify": {Flags: map[string]complete.Predictor{
				"i": exports,
				"c": categories,
			}},
			"gains": {Flags: map[string]complete.Predictor{
				"i": exports,
				"s": predict.Something,
				"d": predict.Something,
			}},
			"holding": {Flags: map[string]complete.Predictor{
				"i": exports,
				"t": predict.Something,
			}},
			"publish": {Flags: map[string]complete.Predictor{
				"i":           exports,
				"o":           predict.Dirs("*"),
				"frontmatter": predict.Files("*"),
			}},
			"topic": {
				Args:  predict.Set(append(topics, "*")),
				Flags: map[string]complete.Predictor{"l": predict.Nothing},
			},
		},
		Flags: map[string]complete.Predictor{
			"address":   predict.Something,
			"data-dir":  predict.Dirs("*"),
			"ref-dir":   predict.Dirs("*"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"raw":       predict.Nothing,
		},
	}
}
