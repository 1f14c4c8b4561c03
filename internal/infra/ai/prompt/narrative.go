package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/bemviver/psicorisk/internal/domain/recommend"
)

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `Você é um especialista sênior em saúde ocupacional e riscos psicossociais (NR-1). Produza exatamente um objeto JSON válido (sem markdown, sem comentários) seguindo o schema abaixo. Não use cercas de código.

Regras:
- A saída deve ser um único objeto JSON.
- "prioridade" deve ser um destes valores: alta, media, baixa.
- "sintese" é um texto executivo em português, com diagnóstico e contexto regulatório.
- "recomendacoes" é uma lista de ações priorizadas; seja objetivo e acionável.
- Baseie-se apenas nos números fornecidos; não invente dados.

Schema (exemplo com valores vazios):
{
  "sintese": "<string>",
  "recomendacoes": [
    {
      "categoria": "<string>",
      "prioridade": "<alta|media|baixa>",
      "titulo": "<string>",
      "descricao": "<string>"
    }
  ]
}`
}

// GetUserPrompt serializes the numeric report snapshot as the user
// message.
func GetUserPrompt(input recommend.ReportInput) string {
	payload, err := json.Marshal(input)
	if err != nil {
		// ReportInput is plain data; marshal only fails on nothing here,
		// but keep a usable prompt anyway.
		return fmt.Sprintf("Gere a síntese e recomendações para a empresa %s.", input.EmpresaID)
	}
	return fmt.Sprintf("Gere a síntese e as recomendações conforme o schema para o seguinte panorama: %s", payload)
}
