package ir

import "github.com/swansonlang/s0/internal/types"

// Block is a sequence of statements terminated by a single invocation,
// with a declared input environment type. A block exclusively owns its
// Inputs, Statements, and Invocation; there is no sharing between
// blocks.
type Block struct {
	Inputs     *types.EnvironmentType
	Statements []Statement
	Invocation Invocation
}

func NewBlock(inputs *types.EnvironmentType, statements []Statement, invocation Invocation) *Block {
	return &Block{Inputs: inputs, Statements: statements, Invocation: invocation}
}
