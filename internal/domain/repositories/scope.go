package repositories

// Scope restringe consultas às franquias visíveis ao chamador.
// Restricted sem FranchiseID não enxerga nada (fail closed).
type Scope struct {
	Restricted  bool
	FranchiseID string
}

// Unrestricted retorna um escopo que enxerga toda a rede
func Unrestricted() Scope {
	return Scope{}
}

// RestrictedTo retorna um escopo limitado a uma franquia ("" = nenhuma)
func RestrictedTo(franchiseID string) Scope {
	return Scope{Restricted: true, FranchiseID: franchiseID}
}

// IsEmpty indica que o escopo não enxerga nenhum registro
func (s Scope) IsEmpty() bool {
	return s.Restricted && s.FranchiseID == ""
}

// Allows verifica se um registro da franquia informada está visível
func (s Scope) Allows(franchiseID string) bool {
	if !s.Restricted {
		return true
	}
	return s.FranchiseID != "" && s.FranchiseID == franchiseID
}

// Pagination contém parâmetros de paginação comuns. Zerada, a listagem é completa.
type Pagination struct {
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}

// Requested indica se page ou pageSize foi informado
func (p Pagination) Requested() bool {
	return p.Page > 0 || p.PageSize > 0
}

// Normalize aplica defaults e limites, retornando limit e offset.
// ok é falso quando nenhuma paginação foi pedida.
func (p Pagination) Normalize() (limit, offset int, ok bool) {
	if !p.Requested() {
		return 0, 0, false
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize, true
}
