package notify

import "errors"

var (
	// ErrMissingRecipient возвращается, когда у payload нет адреса получателя.
	// Для отправки это фатальное нарушение предусловия, но уже закоммиченную
	// резервацию оно не затрагивает.
	ErrMissingRecipient = errors.New("notify: notification payload has no recipient email")

	// ErrTemplateNotFound возвращается, когда для типа уведомления нет шаблона
	ErrTemplateNotFound = errors.New("notify: template not found for notification kind")

	// ErrRender возвращается при ошибке рендеринга шаблона письма
	ErrRender = errors.New("notify: failed to render template")

	// ErrSend возвращается при ошибке отправки через внешний транспорт
	ErrSend = errors.New("notify: failed to send notification")
)
