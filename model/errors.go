package model

// ErroDominio is a recoverable business rule violation with a stable code.
// The sentinels below are wrapped with fmt.Errorf("%w: ...") to add detail
// and matched with errors.Is.
type ErroDominio struct {
	Codigo   string
	Mensagem string
}

func (e *ErroDominio) Error() string {
	return e.Mensagem
}

var (
	ErrDadosInvalidos          = &ErroDominio{"DADOS_INVALIDOS", "dados inválidos"}
	ErrValorInvalido           = &ErroDominio{"VALOR_INVALIDO", "o valor deve ser maior que zero e ter no máximo duas casas decimais"}
	ErrContaJaExiste           = &ErroDominio{"CONTA_JA_EXISTE", "já existe uma conta cadastrada com esse número"}
	ErrContaNaoEncontrada      = &ErroDominio{"CONTA_NAO_ENCONTRADA", "não existe conta cadastrada com esse número"}
	ErrContaInativa            = &ErroDominio{"CONTA_INATIVA", "a conta está inativa"}
	ErrContaJaInativa          = &ErroDominio{"CONTA_JA_INATIVA", "a conta já está inativa"}
	ErrSaldoInsuficiente       = &ErroDominio{"SALDO_INSUFICIENTE", "saldo insuficiente"}
	ErrSaldoNaoZero            = &ErroDominio{"SALDO_NAO_ZERO", "a conta não pode ser encerrada pois ainda possui saldo"}
	ErrTransferenciaMesmaConta = &ErroDominio{"TRANSFERENCIA_MESMA_CONTA", "não é possível transferir para a mesma conta"}
	ErrContaOcupada            = &ErroDominio{"CONTA_OCUPADA", "a conta está ocupada por outra operação, tente novamente"}
)
