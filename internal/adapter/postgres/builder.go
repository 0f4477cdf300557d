package postgres

import sq "github.com/Masterminds/squirrel"

// Builder is the squirrel statement builder shared by all repositories,
// configured for PostgreSQL dollar placeholders. Filters are always
// composed through it, never by string concatenation.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
