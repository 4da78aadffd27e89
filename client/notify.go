package client

// Notifier receives user-facing messages from the SDK. Conflict messages
// arrive verbatim from the server; other failures use the generic texts.
type Notifier interface {
	Error(message string)
	Info(message string)
}

// Localized fallbacks for failures that carry no server message.
const (
	genericErrorText = "Что-то пошло не так. Попробуйте ещё раз."
	networkErrorText = "Нет соединения с сервером. Проверьте интернет."
	invalidDataText  = "Сервер вернул некорректные данные. Попробуйте ещё раз."
)

type NopNotifier struct{}

func (NopNotifier) Error(string) {}
func (NopNotifier) Info(string)  {}

// notifyError routes a failed operation to the notifier: conflicts and other
// API replies surface their server message, network failures the offline
// text, everything else a generic one. Errors are never swallowed silently.
func (c *Client) notifyError(err error) {
	switch e := err.(type) {
	case *ApiError:
		if e.Message != "" {
			c.notifier.Error(e.Message)
		} else {
			c.notifier.Error(genericErrorText)
		}
	case *NetworkError:
		c.notifier.Error(networkErrorText)
	case *ValidationError:
		c.notifier.Error(invalidDataText)
	default:
		c.notifier.Error(genericErrorText)
	}
}
