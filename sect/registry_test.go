package sect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryInsertAndLookup(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Insert(&Section{Name: "header", Kind: ROM0, Size: 0x150})
	require.NoError(t, err)
	_, err = reg.Insert(&Section{Name: "engine", Kind: ROMX, Size: 0x2000})
	require.NoError(t, err)

	require.Equal(t, 2, reg.Len())
	require.NotNil(t, reg.Lookup("header"))
	require.NotNil(t, reg.Lookup("engine"))
	require.Equal(t, uint32(0x2000), reg.Lookup("engine").Size)
	require.Nil(t, reg.Lookup("missing"))
}

func TestRegistryDuplicateNameFails(t *testing.T) {
	reg := NewRegistry()

	first := &Section{Name: "vars", Kind: WRAM0, Size: 0x10}
	_, err := reg.Insert(first)
	require.NoError(t, err)

	_, err = reg.Insert(&Section{Name: "vars", Kind: HRAM, Size: 0x08})
	require.Error(t, err)

	var serr *Error
	require.True(t, errors.As(err, &serr))
	require.Equal(t, ErrKindDuplicate, serr.Kind)
	require.ErrorIs(t, err, ErrDuplicateName)
	require.Contains(t, err.Error(), `"vars"`)

	// The original registration survives.
	require.Equal(t, 1, reg.Len())
	require.Same(t, first, reg.Lookup("vars"))
}

func TestRegistryForEachAllowsInPlaceMutation(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < 5; i++ {
		_, err := reg.Insert(&Section{Name: fmt.Sprintf("s%d", i), Kind: SRAM, Size: 1})
		require.NoError(t, err)
	}

	visited := 0
	reg.ForEach(func(s *Section) {
		visited++
		s.Bank = 7
		s.BankFixed = true
	})
	require.Equal(t, 5, visited)

	for i := 0; i < 5; i++ {
		s := reg.Lookup(fmt.Sprintf("s%d", i))
		require.True(t, s.BankFixed)
		require.Equal(t, uint32(7), s.Bank)
	}
}

func TestRegistryClear(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Insert(&Section{Name: "a", Kind: ROM0})
	require.NoError(t, err)

	reg.Clear()
	require.Equal(t, 0, reg.Len())
	require.Nil(t, reg.Lookup("a"))

	// The name is free again after a reset.
	_, err = reg.Insert(&Section{Name: "a", Kind: ROMX})
	require.NoError(t, err)
}
