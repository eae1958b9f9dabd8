package cmd

import (
	"testing"
)

func Test_commands(t *testing.T) {
	tests := []struct {
		path  []string
		flags []string
	}{
		{
			[]string{"digest"},
			[]string{"in", "enzymes", "circular", "seqs", "bands", "out", "genbank", "csv", "fasta"},
		},
		{
			[]string{"compat"},
			[]string{"in", "enzymes", "circular", "blunt", "min-overhang", "directional", "format", "out", "theoretical"},
		},
		{
			[]string{"plan"},
			[]string{"spec", "protocol", "out", "design-overhangs"},
		},
		{
			[]string{"enzymes"},
			[]string{},
		},
		{
			[]string{"enzymes", "add"},
			[]string{},
		},
		{
			[]string{"enzymes", "rm"},
			[]string{},
		},
		{
			[]string{"seq"},
			[]string{"in", "revcomp"},
		},
	}

	for _, tt := range tests {
		cmd, _, err := RootCmd.Find(tt.path)
		if err != nil {
			t.Errorf("Find(%v) err = %v", tt.path, err)
			continue
		}

		want := tt.path[len(tt.path)-1]
		if cmd.Name() != want {
			t.Errorf("Find(%v) = %s, want %s", tt.path, cmd.Name(), want)
		}

		for _, flag := range tt.flags {
			if cmd.Flags().Lookup(flag) == nil {
				t.Errorf("%s is missing the %s flag", cmd.Name(), flag)
			}
		}
	}
}

func Test_settingsFlag(t *testing.T) {
	settings := RootCmd.PersistentFlags().Lookup("settings")
	if settings == nil {
		t.Fatal("the root command is missing the settings flag")
	}
}
