package postgres

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	domainerrors "github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// translateError converte erros do banco em erros de domínio
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domainerrors.ErrAlreadyExists.Wrap(err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domainerrors.ErrReferenceViolation.Wrap(err)
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// applySearch adiciona um filtro case-insensitive (OR) entre as colunas informadas.
// O termo é literal: % e _ são escapados. LOWER + LIKE ... ESCAPE funciona tanto
// no PostgreSQL quanto no SQLite dos testes.
func applySearch(query *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return query
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	conditions := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, column := range columns {
		conditions[i] = "LOWER(" + column + ") LIKE ? ESCAPE '\\'"
		args[i] = pattern
	}

	return query.Where("("+strings.Join(conditions, " OR ")+")", args...)
}

// applyScope restringe a consulta à franquia do escopo; escopo vazio não retorna nada
func applyScope(query *gorm.DB, scope repositories.Scope, column string) *gorm.DB {
	if !scope.Restricted {
		return query
	}
	if scope.IsEmpty() {
		return query.Where("1 = 0")
	}
	return query.Where(column+" = ?", scope.FranchiseID)
}

// applyDeleted seleciona apenas registros deletados ou apenas ativos
func applyDeleted(query *gorm.DB, deleted bool) *gorm.DB {
	if deleted {
		return query.Where("deleted_at IS NOT NULL")
	}
	return query.Where("deleted_at IS NULL")
}

// applyPagination aplica limit/offset apenas quando a paginação foi pedida
func applyPagination(query *gorm.DB, p repositories.Pagination) *gorm.DB {
	limit, offset, ok := p.Normalize()
	if !ok {
		return query
	}
	return query.Limit(limit).Offset(offset)
}

// softDelete marca deleted_at em um registro ainda ativo
func softDelete(db *gorm.DB, model interface{}, id string) error {
	now := time.Now().Unix()
	return db.Model(model).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func toUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func fromUnix(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

func toUnixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ts := t.Unix()
	return &ts
}

func fromUnixPtr(ts *int64) *time.Time {
	if ts == nil {
		return nil
	}
	t := time.Unix(*ts, 0).UTC()
	return &t
}

// isNotFound indica que First não encontrou registro
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
