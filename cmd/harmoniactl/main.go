package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/harmonia-api/internal/services"
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
	"github.com/Conceptual-Machines/harmonia-api/internal/voiceleading"
)

var (
	flagTonic    string
	flagMode     string
	flagStarting string
	flagLimit    int
)

func parseKeyFlags() (theory.Key, error) {
	return services.ParseKey(flagTonic, flagMode)
}

func parseStartingFlag() (*voiceleading.Voicing, error) {
	if flagStarting == "" {
		return nil, nil
	}
	names := strings.Fields(flagStarting)
	if len(names) != voiceleading.NumVoices {
		return nil, fmt.Errorf("starting voicing needs %d notes, got %d", voiceleading.NumVoices, len(names))
	}
	var voicing voiceleading.Voicing
	for i, name := range names {
		note, err := theory.ParseNote(name)
		if err != nil {
			return nil, fmt.Errorf("invalid note %q: %w", name, err)
		}
		voicing[i] = note
	}
	return &voicing, nil
}

func formatVoicing(v voiceleading.Voicing) string {
	names := v.Strings()
	return strings.Join(names[:], " ")
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [progression]",
		Short: "Find ranked four-part realizations of a progression",
		Example: `  harmoniactl search "I IV V I" --tonic C
  harmoniactl search "i iv V i" --tonic A --mode minor --limit 5
  harmoniactl search "I V6 I IV V7 I" --tonic Eb --starting "Bb4 Eb4 G3 Eb3"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKeyFlags()
			if err != nil {
				return err
			}
			progression, err := voiceleading.ParseProgression(args[0], key)
			if err != nil {
				return err
			}
			starting, err := parseStartingFlag()
			if err != nil {
				return err
			}

			solutions := voiceleading.Search(key, progression, starting)
			if len(solutions) == 0 {
				return fmt.Errorf("no voice leading found for %q in %s", args[0], key)
			}

			shown := solutions
			if flagLimit > 0 && len(shown) > flagLimit {
				shown = shown[:flagLimit]
			}
			fmt.Printf("%d solutions in %s (showing %d)\n\n", len(solutions), key, len(shown))
			for rank, sol := range shown {
				fmt.Printf("#%d  score %d\n", rank+1, sol.Score)
				for i, voicing := range sol.Voicings {
					fmt.Printf("  %-6s %s\n", progression[i], formatVoicing(voicing))
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagStarting, "starting", "", "fixed first voicing, soprano to bass (e.g. \"Bb4 Eb4 G3 Eb3\")")
	cmd.Flags().IntVar(&flagLimit, "limit", 10, "maximum solutions to print (0 for all)")
	return cmd
}

func newVoicingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "voicings [chord]",
		Short: "List the legal voicings of a single chord",
		Example: `  harmoniactl voicings V65 --tonic C
  harmoniactl voicings i --tonic A --mode minor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKeyFlags()
			if err != nil {
				return err
			}
			chord, err := voiceleading.ParseNumeral(args[0], key)
			if err != nil {
				return err
			}

			candidates := voiceleading.GenerateCandidateVoicings(key, chord)
			fmt.Printf("%d voicings of %s in %s\n", len(candidates), chord, key)
			for _, candidate := range candidates {
				fmt.Printf("  %s\n", formatVoicing(candidate.Voicing))
			}
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check [progression] [voicing]...",
		Short:   "Validate an explicit voicing sequence",
		Example: `  harmoniactl check "I V" "G4 E4 C4 C3" "G4 D4 B3 G2" --tonic C`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKeyFlags()
			if err != nil {
				return err
			}
			progression, err := voiceleading.ParseProgression(args[0], key)
			if err != nil {
				return err
			}

			voicings := make([]voiceleading.Voicing, 0, len(args)-1)
			for _, arg := range args[1:] {
				names := strings.Fields(arg)
				if len(names) != voiceleading.NumVoices {
					return fmt.Errorf("voicing %q needs %d notes", arg, voiceleading.NumVoices)
				}
				var voicing voiceleading.Voicing
				for i, name := range names {
					note, err := theory.ParseNote(name)
					if err != nil {
						return fmt.Errorf("invalid note %q: %w", name, err)
					}
					voicing[i] = note
				}
				voicings = append(voicings, voicing)
			}

			score, err := voiceleading.CheckVoiceLeading(key, progression, voicings)
			if err != nil {
				return err
			}
			fmt.Printf("valid, score %d\n", score)
			return nil
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:           "harmoniactl",
		Short:         "Four-part voice leading from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagTonic, "tonic", "C", "tonic pitch (e.g. C, F#, Eb)")
	root.PersistentFlags().StringVar(&flagMode, "mode", "major", "mode (major, minor, or a church mode)")

	root.AddCommand(newSearchCmd(), newVoicingsCmd(), newCheckCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
