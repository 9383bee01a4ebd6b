// Package kvstore implementa o armazenamento de tabela única sobre o
// PostgreSQL. Cada registro vive na tabela items com chave composta
// (pk, sk) e os atributos em uma coluna jsonb, o que permite que todos
// os tipos de registro compartilhem o mesmo repositório físico.
package kvstore

import (
	"context"
	"database/sql"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
)

// Item é o conjunto de atributos de um registro
type Item map[string]interface{}

// Store é a interface de acesso à tabela única
type Store interface {
	// Get devolve nil sem erro quando o registro não existe
	Get(ctx context.Context, pk, sk string) (Item, error)
	// Query lista os registros da partição que contêm os atributos do filtro
	Query(ctx context.Context, pk string, filter Item) ([]Item, error)
	// Create grava o registro, substituindo os atributos se a chave já existir
	Create(ctx context.Context, pk, sk string, item Item) error
	// Update mescla os atributos informados sobre os existentes. Um
	// valor nil remove o atributo do registro.
	Update(ctx context.Context, pk, sk string, fields Item) error
	Delete(ctx context.Context, pk, sk string) error
}

type store struct {
	db postgres.Queryer
	sb sq.StatementBuilderType
}

// New cria o Store sobre a conexão informada
func New(db postgres.Queryer) Store {
	return &store{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (s *store) Get(ctx context.Context, pk, sk string) (Item, error) {
	query, args, err := s.sb.
		Select("attrs").
		From("items").
		Where(sq.Eq{"pk": pk, "sk": sk}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao montar consulta")
	}

	var raw []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "falha ao buscar registro")
	}

	return decodeAttrs(raw)
}

func (s *store) Query(ctx context.Context, pk string, filter Item) ([]Item, error) {
	builder := s.sb.
		Select("attrs").
		From("items").
		Where(sq.Eq{"pk": pk}).
		OrderBy("sk")

	if len(filter) > 0 {
		payload, err := json.Marshal(filter)
		if err != nil {
			return nil, errors.Wrap(err, "falha ao serializar filtro")
		}
		builder = builder.Where(sq.Expr("attrs @> ?::jsonb", string(payload)))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao montar consulta")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao listar registros")
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Wrap(err, "falha ao ler registro")
		}
		item, err := decodeAttrs(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, errors.Wrap(rows.Err(), "falha ao percorrer registros")
}

func (s *store) Create(ctx context.Context, pk, sk string, item Item) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return errors.Wrap(err, "falha ao serializar registro")
	}

	query, args, err := s.sb.
		Insert("items").
		Columns("pk", "sk", "attrs").
		Values(pk, sk, string(payload)).
		Suffix("ON CONFLICT (pk, sk) DO UPDATE SET attrs = EXCLUDED.attrs").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "falha ao montar inserção")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "falha ao gravar registro")
	}

	return nil
}

func (s *store) Update(ctx context.Context, pk, sk string, fields Item) error {
	if len(fields) == 0 {
		return nil
	}

	set := make(Item, len(fields))
	removals := make([]string, 0)
	for key, value := range fields {
		if value == nil {
			removals = append(removals, key)
			continue
		}
		set[key] = value
	}

	payload, err := json.Marshal(set)
	if err != nil {
		return errors.Wrap(err, "falha ao serializar atualização")
	}

	query, args, err := s.sb.
		Update("items").
		Set("attrs", sq.Expr("(attrs || ?::jsonb) - ?::text[]", string(payload), pq.Array(removals))).
		Where(sq.Eq{"pk": pk, "sk": sk}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "falha ao montar atualização")
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "falha ao atualizar registro")
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (s *store) Delete(ctx context.Context, pk, sk string) error {
	query, args, err := s.sb.
		Delete("items").
		Where(sq.Eq{"pk": pk, "sk": sk}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "falha ao montar remoção")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "falha ao remover registro")
	}

	return nil
}

func decodeAttrs(raw []byte) (Item, error) {
	var item Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar atributos")
	}
	return item, nil
}
