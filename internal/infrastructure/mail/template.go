package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// bodyTemplate — одна карточка на все типы событий, различается
// цветом акцента и заголовком.
var bodyTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; margin: 0; padding: 0; background-color: #f4f4f4; }
  .container { padding: 20px; }
  .card { background: white; padding: 30px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); max-width: 600px; margin: 0 auto; }
  .header { color: {{.Accent}}; border-bottom: 3px solid {{.Accent}}; padding-bottom: 15px; margin-bottom: 20px; }
  .detail { margin: 15px 0; padding: 10px; background-color: #f9f9f9; border-left: 4px solid {{.Accent}}; }
  .label { font-weight: bold; color: #333; display: inline-block; width: 120px; }
  .value { color: #666; }
  .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; color: #999; font-size: 12px; text-align: center; }
</style>
</head>
<body>
<div class='container'>
  <div class='card'>
    <h2 class='header'>{{.Header}}</h2>
    <div class='detail'>
      <span class='label'>ID:</span>
      <span class='value'>{{.ProductID}}</span>
    </div>
    <div class='detail'>
      <span class='label'>Nombre:</span>
      <span class='value'>{{.ProductName}}</span>
    </div>
    {{if .Price}}<div class='detail'>
      <span class='label'>Precio:</span>
      <span class='value'>${{.Price}}</span>
    </div>
    {{end}}<div class='detail'>
      <span class='label'>Fecha:</span>
      <span class='value'>{{.Date}}</span>
    </div>
    <div class='footer'>
      Sistema de Catálogo - Notificación Automática
    </div>
  </div>
</div>
</body>
</html>
`))

type templateData struct {
	Accent      string
	Header      string
	ProductID   int64
	ProductName string
	Price       string // пусто для удаления: снимка цены в событии нет
	Date        string
}

// render возвращает тему и HTML-тело письма для события.
func render(event *domain.ProductEvent) (subject, body string, err error) {
	data := templateData{
		ProductID:   event.ProductID,
		ProductName: event.ProductName,
		Date:        event.Timestamp.Format("02/01/2006 15:04:05"),
	}

	switch event.Type {
	case domain.EventProductCreated:
		subject = fmt.Sprintf("Nuevo Producto Creado: %s", event.ProductName)
		data.Accent = "#4CAF50"
		data.Header = "Nuevo Producto en el Catálogo"
		data.Price = decimal.New(event.Price, -2).StringFixed(2)
	case domain.EventProductUpdated:
		subject = fmt.Sprintf("Producto Actualizado: %s", event.ProductName)
		data.Accent = "#2196F3"
		data.Header = "Producto Actualizado en el Catálogo"
		data.Price = decimal.New(event.Price, -2).StringFixed(2)
	case domain.EventProductDeleted:
		subject = fmt.Sprintf("Producto Eliminado: %s", event.ProductName)
		data.Accent = "#f44336"
		data.Header = "Producto Eliminado del Catálogo"
	default:
		return "", "", e.Wrap(whereami.WhereAmI(), e.ErrUnknownEvent)
	}

	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return "", "", e.Wrap(whereami.WhereAmI(), err)
	}

	return subject, buf.String(), nil
}
