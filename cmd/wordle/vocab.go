package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/storage"
	"github.com/vovakirdan/tui-wordle/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Check or import word lists",
	Long: `Word lists can be JSON (an object whose keys are words, or an array of
strings), plain text (one word per line, # comments), YAML (a "words" list)
or a SQLite database with a "words" table. Only five-letter ASCII words are
kept.`,
}

var vocabCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a word list and count its words",
	Args:  cobra.ExactArgs(1),
	RunE:  runVocabCheck,
}

var vocabImportCmd = &cobra.Command{
	Use:   "import <src> <db>",
	Short: "Copy a word list into a SQLite database",
	Long: `Load a word list from any supported format and store it in the "words"
table of a SQLite database, replacing what was there. The database can then
be used with --vocab.

Examples:
  wordle vocab import ./vocabulary.json ~/.wordle/words.db`,
	Args: cobra.ExactArgs(2),
	RunE: runVocabImport,
}

func init() {
	vocabCmd.AddCommand(vocabCheckCmd)
	vocabCmd.AddCommand(vocabImportCmd)
}

func runVocabCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := vocab.FormatForPath(path)
	if err != nil {
		return err
	}

	v, err := vocab.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d words (%s)\n", path, v.Len(), format)
	return nil
}

func runVocabImport(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	v, err := vocab.Load(src)
	if err != nil {
		return err
	}

	store, err := storage.Open(dst)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.ReplaceWords(v.Words())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words into %s\n", n, store.Path())
	return nil
}
