package nl2sql

import (
	"context"

	"github.com/reshmailfatima/Text2SQL/internal/schema"
)

type Request struct {
	Question string
	Schema   []schema.Table
}

// Result carries the raw model output. Statement extraction happens
// downstream; providers never reshape what the model said.
type Result struct {
	Text     string
	Provider string
	Model    string
}

type Translator interface {
	Translate(ctx context.Context, req Request) (Result, error)
}
