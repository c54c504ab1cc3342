package screens

// Avisos de mutación exitosa. El handler redirige con ?ok=<código> y la carga
// siguiente lo traduce con NoticeText.
const (
	NoticeSaved   = "salvo"
	NoticeDeleted = "excluido"
	NoticeEntry   = "entrada"
	NoticeExit    = "saida"
	NoticeStatus  = "status"
)

var noticeTexts = map[string]string{
	NoticeSaved:   "Item salvo com sucesso.",
	NoticeDeleted: "Item excluído.",
	NoticeEntry:   "Entrada registrada com sucesso.",
	NoticeExit:    "Saída registrada com sucesso.",
	NoticeStatus:  "Status da venda atualizado.",
}

// NoticeText texto del aviso; vacío para códigos desconocidos.
func NoticeText(code string) string { return noticeTexts[code] }
