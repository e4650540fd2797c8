// internal/core/dialog/reply.go
package dialog

// KeyboardKind - вид клавиатуры исходящего сообщения
type KeyboardKind int

const (
	KeyboardNone KeyboardKind = iota
	KeyboardReply
	KeyboardInline
)

// Button - одна кнопка. Для reply-клавиатур используется только Text,
// для inline-клавиатур Callback несёт полезную нагрузку.
type Button struct {
	Text     string
	Callback string
}

// Keyboard - описание клавиатуры, независимое от транспорта
type Keyboard struct {
	Kind KeyboardKind
	Rows [][]Button
}

// Reply - описание ответа, который транспорт должен отрисовать
type Reply struct {
	Text     string
	Keyboard Keyboard

	// Toast - текст ответа на callback (всплывающее уведомление)
	Toast string
	// DeleteMessage - удалить сообщение, породившее callback
	DeleteMessage bool
}

// нет ни текста, ни действия - транспорту нечего отправлять
func (r Reply) Empty() bool {
	return r.Text == "" && r.Toast == "" && !r.DeleteMessage
}

func replyRow(labels ...string) []Button {
	row := make([]Button, len(labels))
	for i, label := range labels {
		row[i] = Button{Text: label}
	}
	return row
}
