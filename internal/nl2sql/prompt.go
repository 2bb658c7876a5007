package nl2sql

import (
	"fmt"
	"strings"

	"github.com/reshmailfatima/Text2SQL/internal/schema"
)

// systemPrompt anchors the generation behavior the downstream pipeline is
// tuned for: bare statements, filters only when the question asks for them.
const systemPrompt = "You are an advanced SQL query generator. " +
	"Generate SQL queries that match exactly what was asked. " +
	"Pay careful attention to when filters are needed vs. when all records are requested."

const exampleQueries = `EXAMPLE QUERIES:
1. "Show all schools"
   SELECT * FROM schools;

2. "Show schools with rating above 4"
   SELECT * FROM schools WHERE rating > 4;

3. "Show all schools whose name starts with A"
   SELECT * FROM schools WHERE name LIKE 'A%';

4. "Show all schools that have rating equal to 5"
   SELECT * FROM schools WHERE rating = 5;

5. "Update rating to 5 for school with id 3"
   UPDATE schools SET rating = 5 WHERE id = 3;

6. "Add a new school named 'Excellence Academy' with rating 4.8"
   INSERT INTO schools (name, rating) VALUES ('Excellence Academy', 4.8);

7. "Delete the school with id 10"
   DELETE FROM schools WHERE id = 10;

IMPORTANT RULES:
- Only include WHERE clauses when a filter condition is specified in the query
- If the query mentions "starts with", "whose", "with", etc., a WHERE clause is needed
- If the user just asks for "all schools" without any conditions, do not add a WHERE clause
- Pay close attention to filter words like "whose", "where", "with", etc.`

const promptTemplate = `%s

%s

Convert this natural language query to SQL. Use ONLY the tables and columns from the schema above.
The query might require a SELECT, UPDATE, INSERT, or DELETE statement.

Query: %s

Rules:
1. Only use tables and columns that exist in the schema
2. Use exact column names as shown in schema
3. Ensure proper SQL syntax
4. Handle UPDATE, INSERT, and DELETE operations correctly
5. Pay special attention to filtering criteria:
   - Include WHERE clauses when the user specifies conditions (e.g., "whose name", "with rating", etc.)
   - Do NOT include WHERE clauses when the user just wants all records without conditions
6. Return ONLY the SQL query, no explanations

SQL Query:`

func buildPrompt(question string, tables []schema.Table) string {
	return fmt.Sprintf(promptTemplate, schema.Render(tables), exampleQueries, strings.TrimSpace(question))
}
