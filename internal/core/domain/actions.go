package domain

// ApprovalDecision - ответ администратора на подтверждение и запрос сообщения.
type ApprovalDecision struct {
	Confirmed bool
	Message   string
}

// ActionResult - итог approve/reject. Aborted означает отмену без сетевого вызова.
// Listings заполняется повторной загрузкой только после успешной мутации.
type ActionResult struct {
	Aborted    bool
	Listings   []Property
	RefreshErr error
}

// DashboardStats - счетчики карточек дашборда агента.
type DashboardStats struct {
	ListingsCount int
}

// CreatePropertyResult - итог успешной отправки формы вместе с обновленными данными страницы.
type CreatePropertyResult struct {
	Created    *Property
	Listings   []Property
	RefreshErr error
	Stats      DashboardStats
	StatsErr   error
}
