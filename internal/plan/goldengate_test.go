package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOverhangs(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateOverhangs([]string{"AATG", "AAGC", "ACAG"}))
		assert.NoError(t, ValidateOverhangs(nil))
	})

	t.Run("Duplicates", func(t *testing.T) {
		err := ValidateOverhangs([]string{"AATG", "AAGC", "AATG"})
		require.Error(t, err)
		assert.EqualError(t, err, "duplicate overhangs: AATG")
	})

	t.Run("Palindromes", func(t *testing.T) {
		err := ValidateOverhangs([]string{"GATC", "AATG"})
		require.Error(t, err)
		assert.EqualError(t, err, "palindromic overhangs (non-directional): GATC")
	})

	t.Run("ComplementaryPairs", func(t *testing.T) {
		// CATT anneals to AATG, so fragments can ligate in the wrong order
		err := ValidateOverhangs([]string{"AATG", "ACAG", "CATT"})
		require.Error(t, err)
		assert.EqualError(t, err, "complementary overhang pairs (causes unwanted ligation): AATG<->CATT")
	})
}

func TestDesignOverhangs(t *testing.T) {
	t.Run("TwoJunctions", func(t *testing.T) {
		overhangs, err := DesignOverhangs(2)
		require.NoError(t, err)
		assert.Equal(t, []string{"AATG", "AAGC", "ACAG"}, overhangs)
		assert.NoError(t, ValidateOverhangs(overhangs))
	})

	t.Run("SkipsPalindromes", func(t *testing.T) {
		overhangs, err := DesignOverhangs(15)
		require.NoError(t, err)
		assert.Len(t, overhangs, 16)
		assert.NotContains(t, overhangs, "CTAG")
	})

	t.Run("LibraryExhausted", func(t *testing.T) {
		_, err := DesignOverhangs(19)
		require.Error(t, err)
		assert.EqualError(t, err, "cannot design 20 overhangs with current library")
	})
}

func TestFramePreserved(t *testing.T) {
	tests := []struct {
		name       string
		left       string
		right      string
		scar       string
		leftFrame  int
		rightFrame int
		wantOK     bool
		wantReason string
	}{
		{
			name:       "codon-length scar keeps frame",
			left:       "ATGGCC",
			right:      "GCCGCC",
			scar:       "GGG",
			wantOK:     true,
			wantReason: "Frame preserved, no stop codons",
		},
		{
			name:       "four base scar shifts frame",
			left:       "ATGGCC",
			right:      "GCCGCC",
			scar:       "AATT",
			wantOK:     false,
			wantReason: "Frame shift: scar adds 4 bp, shifting frame from 0 to 1, but right expects 0",
		},
		{
			name:       "scar matching the declared frames",
			left:       "AATGCC",
			right:      "AAACCC",
			scar:       "GG",
			leftFrame:  1,
			rightFrame: 0,
			wantOK:     true,
			wantReason: "Frame preserved, no stop codons",
		},
		{
			name:       "stop codon introduced by scar",
			left:       "ATGGCC",
			right:      "GCCGCC",
			scar:       "TAA",
			wantOK:     false,
			wantReason: "Stop codons found in junction: TAA@6",
		},
		{
			name:       "too little context to judge",
			left:       "AT",
			right:      "GCCGCC",
			scar:       "GGG",
			wantOK:     true,
			wantReason: "Insufficient context for frame analysis (left=2bp, right=6bp, need >=3bp)",
		},
		{
			name:       "long context trimmed to nine bases",
			left:       "ATGATGATGATG",
			right:      "GCCGCCGCCGCC",
			scar:       "",
			wantOK:     true,
			wantReason: "Frame preserved, no stop codons",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := FramePreserved(tt.left, tt.right, tt.scar, tt.leftFrame, tt.rightFrame)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}
