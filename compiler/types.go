package compiler

import (
	"regexp"
	"strconv"
)

const (
	// AutoType is recorded for declarations without a type annotation
	AutoType = "auto"

	// VoidType is the return type of functions that declare none
	VoidType = "void"
)

var (
	prefixArray = regexp.MustCompile(`^\[(\d+)\](.+)$`)
	suffixArray = regexp.MustCompile(`^(.+)\[(\d+)\]$`)

	identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	intLiteral   = regexp.MustCompile(`^-?(0[xX][0-9a-fA-F_]+|[0-9][0-9_]*)$`)
	floatLiteral = regexp.MustCompile(`^-?([0-9][0-9_]*)?\.[0-9][0-9_]*([eE][-+]?[0-9]+)?$`)
)

// declType is a type annotation split into element type and array size
type declType struct {
	Base    string
	Size    int
	IsArray bool
}

// parseDeclType recognises [N]T and T[N] array annotations
func parseDeclType(text string) declType {
	if text == "" {
		return declType{Base: AutoType}
	}
	if m := prefixArray.FindStringSubmatch(text); m != nil {
		if size, err := strconv.Atoi(m[1]); err == nil {
			return declType{Base: m[2], Size: size, IsArray: true}
		}
	}
	if m := suffixArray.FindStringSubmatch(text); m != nil {
		if size, err := strconv.Atoi(m[2]); err == nil {
			return declType{Base: m[1], Size: size, IsArray: true}
		}
	}
	return declType{Base: text}
}

// initKind classifies an initializer by its source text
type initKind int

const (
	initOther initKind = iota
	initIdent
	initInt
	initFloat
	initBool
)

func classifyInit(text string) initKind {
	switch {
	case text == "true" || text == "false":
		return initBool
	case identPattern.MatchString(text):
		return initIdent
	case intLiteral.MatchString(text):
		return initInt
	case floatLiteral.MatchString(text):
		return initFloat
	}
	return initOther
}
