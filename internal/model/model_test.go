package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataType_String(t *testing.T) {
	tests := []struct {
		dataType DataType
		want     string
	}{
		{Any, "any"},
		{Bool, "bool"},
		{Int, "int"},
		{Float, "float"},
		{Fun(), "fun()"},
		{Fun(Int, Bool), "fun(int, bool)"},
		{Asm(Float), "asm(float)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dataType.String())
		})
	}
}

func TestDataType_Equal(t *testing.T) {
	assert.True(t, Fun(Int, Bool).Equal(Fun(Int, Bool)))
	assert.True(t, Asm().Equal(DataType{Kind: KindAsm, Params: []DataType{}}))
	assert.False(t, Fun(Int).Equal(Asm(Int)))
	assert.False(t, Fun(Int).Equal(Fun(Bool)))
	assert.False(t, Fun(Int).Equal(Fun(Int, Int)))
	assert.False(t, Any.Equal(Bool))
}

func TestDataType_Predicates(t *testing.T) {
	assert.True(t, Any.IsAny())
	assert.False(t, Int.IsAny())
	assert.True(t, Fun().IsCallable())
	assert.True(t, Asm().IsCallable())
	assert.False(t, Bool.IsCallable())
}

func TestParseDataType(t *testing.T) {
	for _, name := range []string{"any", "bool", "int", "float"} {
		dataType, err := ParseDataType(name)
		require.NoError(t, err)
		assert.Equal(t, name, dataType.String())
	}

	dataType, err := ParseDataType(" Bool ")
	require.NoError(t, err)
	assert.Equal(t, Bool, dataType)

	_, err = ParseDataType("fun")
	require.Error(t, err)
}

func TestRegisterNames(t *testing.T) {
	assert.Equal(t, "FunWord_0", FunWord(0))
	assert.Equal(t, "FunWord_A", FunWord(10))
	assert.Equal(t, "FunFlag_5F", FunFlag(95))
	assert.Equal(t, "MapVar_3", MapVar(3))
}

func TestMapInfo_Size(t *testing.T) {
	assert.Equal(t, 0x20, MapInfo{RomStart: 0x10, RomEnd: 0x30}.Size())
	assert.Zero(t, MapInfo{RomStart: 0x30, RomEnd: 0x10}.Size())
	assert.Equal(t, "0x80240000", Address(0x80240000).String())
}

func TestCatalogue_IsImmutable(t *testing.T) {
	entries := []EntryPoint{{Address: 0x802D0000, Name: "PlaySound", Type: Asm(Int)}}
	catalogue := NewCatalogue(entries)

	entries[0].Name = "changed"
	got := catalogue.Entries()
	got[0].Name = "also changed"

	assert.Equal(t, 1, catalogue.Len())
	assert.Equal(t, "PlaySound", catalogue.Entries()[0].Name)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "decompiled", Decompiled.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unchanged", Unchanged.String())
	assert.Equal(t, "changed", Changed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
