package nl2sql

import (
	"strings"
	"testing"

	"github.com/reshmailfatima/Text2SQL/internal/schema"
)

func TestBuildPromptEmbedsSchemaAndQuestion(t *testing.T) {
	tables := []schema.Table{
		{Name: "schools", Columns: []schema.Column{
			{Name: "id", Type: "int", PrimaryKey: true},
			{Name: "rating", Type: "float", Nullable: true},
		}},
	}

	prompt := buildPrompt("Show all schools with rating above 4", tables)

	for _, want := range []string{
		"Database Schema:",
		"Table: schools",
		"- rating (float) NULL",
		"EXAMPLE QUERIES:",
		"Query: Show all schools with rating above 4",
		"6. Return ONLY the SQL query, no explanations",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.HasSuffix(prompt, "SQL Query:") {
		t.Fatalf("prompt must end with the completion cue:\n%s", prompt)
	}
}

func TestBuildPromptWithoutSchemaOmitsSchemaSection(t *testing.T) {
	prompt := buildPrompt("Show all schools", nil)

	if strings.Contains(prompt, "Database Schema:") {
		t.Fatalf("prompt should have no schema section:\n%s", prompt)
	}
	if !strings.Contains(prompt, "EXAMPLE QUERIES:") {
		t.Fatal("examples must survive a missing schema")
	}
}

func TestBuildPromptTrimsQuestionWhitespace(t *testing.T) {
	prompt := buildPrompt("  Delete the school with id 10\n", nil)

	if !strings.Contains(prompt, "Query: Delete the school with id 10\n") {
		t.Fatalf("question not trimmed:\n%s", prompt)
	}
}
