package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/lotto-api/internal/database"
	"github.com/deppfellow/lotto-api/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Convert finds a driver error in err's chain and normalizes it.
func Convert(err error) (*Error, bool) {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr, true
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return ConvertPgError(pgerr), true
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return ConvertSQLiteError(liteErr), true
	}

	return nil, false
}

// ConvertPgError converts a raw Postgres error into an Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	sqlErr := &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}

	// Postgres reports unique violations by constraint, not by column.
	if sqlErr.Code == UniqueViolation && sqlErr.ColumnName == "" {
		sqlErr.ColumnName = extractColumnForUniqueViolation(src.ConstraintName)
	}

	return sqlErr
}

// SQLite puts the failing table.column into the message text:
//
//	NOT NULL constraint failed: users.email
//	UNIQUE constraint failed: users.username
var sqliteColumnRe = regexp.MustCompile(`constraint failed: (\w+)\.(\w+)`)

// ConvertSQLiteError converts a modernc SQLite error into an Error.
func ConvertSQLiteError(src *sqlite.Error) *Error {
	code := src.Code()

	sqlErr := &Error{
		Code:         Other,
		Severity:     SeverityError,
		DatabaseCode: itoa(code),
		Message:      src.Error(),
		driverErr:    src,
	}

	switch code {
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		sqlErr.Code = NotNullViolation
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		sqlErr.Code = ForeignKeyViolation
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		sqlErr.Code = UniqueViolation
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		sqlErr.Code = CheckViolation
	case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR, sqlite3.SQLITE_NOTADB:
		sqlErr.Code = ConnectionException
	}

	if m := sqliteColumnRe.FindStringSubmatch(src.Error()); m != nil {
		sqlErr.TableName = m[1]
		sqlErr.ColumnName = m[2]
	}

	return sqlErr
}

// generateErrorCode creates a machine code of the form <DOMAIN>_<ACTION>,
// e.g. users + UniqueViolation => USER_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Naive singularization: "USERS" -> "USER", "LOTTO_DRAWS" -> "LOTTO_DRAW".
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	case ConnectionException:
		action = "UNAVAILABLE"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// Describe renders a short human explanation of a driver error for logs.
// It returns "" when err carries no driver error.
func Describe(err error) string {
	sqlErr, ok := Convert(err)
	if !ok {
		return ""
	}

	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)
	fieldName := humanizeText(sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		if fieldName != "" {
			return fmt.Sprintf("A %s with this %s already exists", getEntityName(sqlErr.TableName, ""), fieldName)
		}
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case ConnectionException:
		return "The database is unreachable"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name: a "_id" column wins, then the
// singularized table name, then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts "winning_number" into "Winning Number".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var uniqueKeyRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// extractColumnForUniqueViolation infers the column from a unique
// constraint name. Supported conventions: unique_<table>_<column> and
// <table>_<column>_key (or _ukey).
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyRe.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a failure from the data layer into an HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - *database.StorageError: 500 carrying the store's native message, with
//     a machine code derived from the driver error
//   - anything else: generic 500
//
// Missing rows never arrive here: the gateways report them as found=false
// and the services turn that into a resource-specific 404.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var storageErr *database.StorageError
	if errors.As(err, &storageErr) {
		code := ""
		if sqlErr, ok := Convert(storageErr); ok {
			code = generateErrorCode(sqlErr.TableName, sqlErr.Code)
		}
		return errs.NewStorageError(storageErr.Error(), code)
	}

	return errs.NewInternalServerError()
}
