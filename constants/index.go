package constants

// Roles
const (
	ROLE_ADMIN      = "ADMIN"
	ROLE_ORGANIZER  = "ORGANIZADOR"
	ROLE_CHECKIN_OP = "OPERADOR_CHECKIN"
)

// Mensagens de autenticação
const (
	MISSING_LOGIN_INPUT  = "Informe usuário e senha"
	INVALID_USERNAME     = "Usuário não encontrado"
	INVALID_PASSWORD     = "Senha incorreta"
	ACCOUNT_NOT_ACTIVE   = "Conta desativada"
	ERROR_INTERNAL_ERROR = "Erro interno, tente novamente"
	NOT_ADMIN            = "Acesso restrito ao administrador"
)

// Mensagens gerais
const (
	DATA_INPUT_IS_NOT_NUMBER = "Parâmetro deve ser numérico"
	INVALID_INPUT            = "Dados inválidos"
	NOT_FOUND                = "Registro não encontrado"
)

// Eventos
const (
	EVENT_NOT_FOUND      = "Evento não encontrado"
	EVENT_NOT_PUBLISHED  = "Evento não está publicado"
	EVENT_ALREADY_EXISTS = "Já existe um evento com esse nome"
)

// Ingressos / pedidos
const (
	TICKET_TYPE_NOT_FOUND     = "Tipo de ingresso não encontrado"
	TICKET_TYPE_INACTIVE      = "Tipo de ingresso inativo"
	TICKET_TYPE_SOLD_OUT      = "Ingressos esgotados para este tipo"
	INSUFFICIENT_INVENTORY    = "Quantidade solicitada acima do disponível"
	QUANTITY_BELOW_SOLD       = "Quantidade total não pode ficar abaixo do já vendido"
	CART_NOT_FOUND            = "Carrinho não encontrado ou expirado"
	CART_EMPTY                = "Carrinho vazio"
	MISSING_BUYER_INFO        = "Nome e e-mail do comprador são obrigatórios"
	ORDER_NOT_FOUND           = "Pedido não encontrado"
	ORDER_ALREADY_CANCELLED   = "Pedido já cancelado"
	ORDER_HAS_CHECKED_IN      = "Pedido possui participante com check-in realizado"
)

// Cupons
const (
	COUPON_NOT_FOUND      = "Cupom inválido"
	COUPON_WRONG_EVENT    = "Cupom não pertence a este evento"
	COUPON_INACTIVE       = "Cupom inativo"
	COUPON_OUT_OF_WINDOW  = "Cupom fora do período de validade"
	COUPON_EXHAUSTED      = "Cupom atingiu o limite de usos"
	COUPON_ALREADY_EXISTS = "Já existe um cupom com esse código"
)

// Check-in
const (
	CHECKIN_CODE_INVALID   = "Código inválido"
	CHECKIN_ALREADY_DONE   = "Participante já realizou check-in"
	CHECKIN_DONE           = "Check-in realizado com sucesso"
	ATTENDEE_NOT_FOUND     = "Participante não encontrado"
)

// Lista de espera
const (
	WAITLIST_NOT_SOLD_OUT = "Tipo de ingresso ainda possui vagas"
	WAITLIST_DUPLICATE    = "E-mail já está na lista de espera"
)
