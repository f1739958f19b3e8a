package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("registro não encontrado")

// rowScanner é satisfeito por *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// execer é satisfeito por *sql.Tx e pela conexão
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func ensureAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertResult resume a gravação de um lote importado. Conflicts traz os ids
// que já existem em outro restaurante e por isso não foram gravados.
type UpsertResult struct {
	Written   int
	Conflicts []string
}

// exec grava um registro do lote. O ON CONFLICT só atualiza linhas do mesmo
// restaurante, então nenhuma linha afetada indica id de outro restaurante.
func (u *UpsertResult) exec(ctx context.Context, db execer, id, query string, args []interface{}) (bool, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		u.Conflicts = append(u.Conflicts, id)
		return false, nil
	}

	u.Written++
	return true, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
