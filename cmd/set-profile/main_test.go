package main

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"lg/sahha-go-api/nutrition"
)

func TestReadProfile(t *testing.T) {
	in := "Omar\n25\nMale\n70\n170\n1.55\nmaintain\n"
	p, err := readProfile(bufio.NewReader(strings.NewReader(in)), io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := nutrition.UserProfile{
		Name: "Omar", Age: 25, Gender: nutrition.Male, Weight: 70, Height: 170,
		ActivityLevel: nutrition.Moderate, Goal: nutrition.Maintain,
	}
	if p != want {
		t.Errorf("got %+v, want %+v", p, want)
	}
}

func TestReadProfile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"age not a number", "x\nold\n"},
		{"bad activity", "x\n25\nmale\n70\n170\nlazy\n"},
		{"bad goal", "x\n25\nmale\n70\n170\nlight\nbulk\n"},
		{"zero weight", "x\n25\nfemale\n0\n170\nlight\nlose\n"},
		{"eof", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readProfile(bufio.NewReader(strings.NewReader(tt.in)), io.Discard)
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestReadProfile_ValidationSentinel(t *testing.T) {
	_, err := readProfile(bufio.NewReader(strings.NewReader("x\n25\nother\n70\n170\nlight\nlose\n")), io.Discard)
	if !errors.Is(err, nutrition.ErrInvalidProfile) {
		t.Errorf("expected ErrInvalidProfile, got %v", err)
	}
}
