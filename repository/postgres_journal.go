package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bytebank-api/logger"
	"bytebank-api/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	upsertContaQuery = `INSERT INTO contas (numero, titular_nome, titular_cpf, titular_email, saldo, esta_ativa, criada_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (numero) DO UPDATE SET
			titular_nome = EXCLUDED.titular_nome,
			titular_email = EXCLUDED.titular_email,
			saldo = EXCLUDED.saldo,
			esta_ativa = EXCLUDED.esta_ativa`

	insertTransacaoQuery = `INSERT INTO transacoes (id, numero_conta, tipo_operacao, valor, saldo_anterior, saldo_novo, data_hora, descricao, transferencia_id, conta_contraparte)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	encerrarContaQuery = `UPDATE contas SET encerrada = TRUE WHERE numero = $1`

	selectContasQuery = `SELECT numero, titular_nome, titular_cpf, titular_email, saldo, esta_ativa, encerrada, criada_em
		FROM contas ORDER BY numero`

	selectTransacoesQuery = `SELECT id, numero_conta, tipo_operacao, valor, saldo_anterior, saldo_novo, data_hora, descricao, transferencia_id, conta_contraparte
		FROM transacoes ORDER BY seq`
)

// PostgresJournal writes ledger changes to PostgreSQL, one database transaction per change.
type PostgresJournal struct {
	DB *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{DB: db}
}

func (j *PostgresJournal) Registrar(ctx context.Context, mudanca Mudanca) error {
	log := logger.Log.WithFields(logrus.Fields{
		"accounts":     len(mudanca.Contas),
		"transactions": len(mudanca.Transacoes),
		"closed":       len(mudanca.Encerradas),
	})
	log.Debug("Writing ledger change to journal")

	tx, err := j.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin journal transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range mudanca.Contas {
		_, err := tx.ExecContext(ctx, upsertContaQuery,
			c.Numero, c.Titular.Nome, c.Titular.CPF, c.Titular.Email, c.Saldo.String(), c.EstaAtiva, c.CriadaEm)
		if err != nil {
			log.WithError(err).WithField("numero", c.Numero).Error("Failed to upsert account")
			return fmt.Errorf("could not write account %d: %w", c.Numero, err)
		}
	}

	for _, t := range mudanca.Transacoes {
		var transferenciaID sql.NullString
		if t.TransferenciaID != nil {
			transferenciaID = sql.NullString{String: t.TransferenciaID.String(), Valid: true}
		}
		var contraparte sql.NullInt64
		if t.ContaContraparte != nil {
			contraparte = sql.NullInt64{Int64: *t.ContaContraparte, Valid: true}
		}
		_, err := tx.ExecContext(ctx, insertTransacaoQuery,
			t.ID.String(), t.NumeroConta, string(t.TipoOperacao), t.Valor.String(), t.SaldoAnterior.String(),
			t.SaldoNovo.String(), t.DataHora, t.Descricao, transferenciaID, contraparte)
		if err != nil {
			log.WithError(err).WithField("transaction_id", t.ID).Error("Failed to insert transaction")
			return fmt.Errorf("could not write transaction %s: %w", t.ID, err)
		}
	}

	for _, numero := range mudanca.Encerradas {
		if _, err := tx.ExecContext(ctx, encerrarContaQuery, numero); err != nil {
			log.WithError(err).WithField("numero", numero).Error("Failed to close account")
			return fmt.Errorf("could not close account %d: %w", numero, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit journal transaction: %w", err)
	}
	return nil
}

func (j *PostgresJournal) Carregar(ctx context.Context) (*Estado, error) {
	logger.Log.Info("Loading ledger state from journal")

	estado := &Estado{}

	rows, err := j.DB.QueryContext(ctx, selectContasQuery)
	if err != nil {
		return nil, fmt.Errorf("could not query accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Conta
		var encerrada bool
		if err := rows.Scan(&c.Numero, &c.Titular.Nome, &c.Titular.CPF, &c.Titular.Email,
			&c.Saldo, &c.EstaAtiva, &encerrada, &c.CriadaEm); err != nil {
			return nil, fmt.Errorf("could not scan account row: %w", err)
		}
		c.CriadaEm = c.CriadaEm.UTC()
		if encerrada {
			estado.Encerradas = append(estado.Encerradas, c)
		} else {
			estado.Abertas = append(estado.Abertas, c)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read accounts: %w", err)
	}

	trows, err := j.DB.QueryContext(ctx, selectTransacoesQuery)
	if err != nil {
		return nil, fmt.Errorf("could not query transactions: %w", err)
	}
	defer trows.Close()

	for trows.Next() {
		var t model.Transacao
		var tipo string
		var transferenciaID uuid.NullUUID
		var contraparte sql.NullInt64
		if err := trows.Scan(&t.ID, &t.NumeroConta, &tipo, &t.Valor, &t.SaldoAnterior, &t.SaldoNovo,
			&t.DataHora, &t.Descricao, &transferenciaID, &contraparte); err != nil {
			return nil, fmt.Errorf("could not scan transaction row: %w", err)
		}
		t.TipoOperacao = model.TipoOperacao(tipo)
		t.DataHora = t.DataHora.UTC()
		if transferenciaID.Valid {
			id := transferenciaID.UUID
			t.TransferenciaID = &id
		}
		if contraparte.Valid {
			n := contraparte.Int64
			t.ContaContraparte = &n
		}
		estado.Transacoes = append(estado.Transacoes, t)
	}
	if err := trows.Err(); err != nil {
		return nil, fmt.Errorf("could not read transactions: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"open_accounts":   len(estado.Abertas),
		"closed_accounts": len(estado.Encerradas),
		"transactions":    len(estado.Transacoes),
	}).Info("Ledger state loaded")
	return estado, nil
}
