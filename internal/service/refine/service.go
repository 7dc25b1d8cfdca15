// Package refine layers an optional legal-refinement pass over filled
// contract text. It never fails: every degradation of the external model
// service collapses into the filled template plus an explanatory note.
package refine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sozhane/backend/config"
	"github.com/sozhane/backend/internal/fill"
	"github.com/sozhane/backend/internal/model"
	"github.com/sozhane/backend/internal/pkg/llm"
	"github.com/sozhane/backend/internal/utils"
	"k8s.io/klog/v2"
)

// placeholderKey is the sentinel shipped in sample configs; it means "no
// credential" just like an empty key.
const placeholderKey = "sk-ant-xxxxx"

const systemPrompt = `Sen deneyimli bir Türk hukuku uzmanısın. Görevin, kullanıcıların hazırladığı sözleşmeleri Türk hukukuna tam uyumlu hale getirmektir.

KURALLAR:
- 6098 sayılı Türk Borçlar Kanunu (TBK) başta olmak üzere ilgili mevzuata referans ver.
- Zayıf veya eksik maddeleri güçlendir.
- Hukuki terminolojiyi düzelt ve tutarlı hale getir.
- Tarafların haklarını dengeli koru.
- Her değişiklik için kısa, anlaşılır bir hukuki dipnot hazırla.
- Sözleşmenin genel yapısını ve formatını koru.
- Madde numaralandırmasını düzgün tut.

YASAL UYARI: Bu bir avukatlık hizmeti değildir. Genel bilgilendirme amaçlıdır.

YANIT FORMATI: Yalnızca JSON döndür, başka hiçbir şey yazma (markdown backtick dahil).
Format: {"contract": "tam düzenlenmiş sözleşme metni", "notes": [{"title": "kısa başlık", "note": "hukuki açıklama"}]}`

// Completer is what Refine needs from the model client.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type Service struct {
	apiKey string
	client Completer
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		apiKey: cfg.LLM.APIKey,
		client: llm.NewClient(cfg),
	}
}

// NewServiceWithClient injects a custom completer.
func NewServiceWithClient(cfg *config.Config, client Completer) *Service {
	return &Service{apiKey: cfg.LLM.APIKey, client: client}
}

// Result is what the caller always gets, whatever happened upstream.
// AIUsed reports whether the returned text actually came from the model
// service; every fallback rung leaves it false.
type Result struct {
	Contract string         `json:"contract"`
	Notes    []model.AINote `json:"notes"`
	AIUsed   bool           `json:"ai_used"`
}

// Refine fills baseText and then walks the fallback ladder: no credential,
// service failure, malformed response and success each produce a usable
// document. A single attempt per call, no retries.
func (s *Service) Refine(ctx context.Context, baseText string, data fill.FormData, templateTitle string) Result {
	filled := fill.Apply(baseText, data)

	if s.apiKey == "" || s.apiKey == placeholderKey {
		klog.V(6).Info("refinement credential absent, returning filled template")
		return Result{
			Contract: filled,
			Notes: []model.AINote{
				{
					Title: "Standart Şablon Kullanıldı",
					Note:  "AI düzenleme servisi yapılandırılmamış. Sözleşmeniz, 6098 sayılı TBK ve ilgili mevzuata uygun standart şablonumuz ile oluşturuldu.",
				},
				{
					Title: "Öneri: Avukat Kontrolü",
					Note:  "Yüksek tutarlı veya karmaşık sözleşmeleriniz için bir avukatın incelemesini öneririz.",
				},
			},
		}
	}

	userPrompt := fmt.Sprintf(`Aşağıdaki "%s" şablonunu incele ve Türk hukukuna uygun şekilde düzenle. Eksik veya zayıf maddeleri güçlendir, her değişikliğin hukuki gerekçesini dipnot olarak belirt.

SÖZLEŞME METNİ:
%s`, templateTitle, filled)

	raw, err := s.client.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		klog.Errorf("refinement service call failed: %v", err)
		return Result{
			Contract: filled,
			Notes: []model.AINote{{
				Title: "Bağlantı Hatası",
				Note:  "AI servisine erişilemedi. Standart şablon kullanıldı. Lütfen tekrar deneyin.",
			}},
		}
	}

	contract, notes, ok := parseRefinement(raw)
	if !ok {
		klog.Errorf("refinement response not parsable, falling back to filled template")
		return Result{
			Contract: filled,
			Notes: []model.AINote{{
				Title: "Kısmi Düzenleme",
				Note:  "AI yanıtı işlenemedi. Standart şablon ile devam edildi.",
			}},
		}
	}

	if contract == "" {
		contract = filled
	}
	return Result{Contract: contract, Notes: notes, AIUsed: true}
}

// parseRefinement decodes the strictly-structured refinement payload.
// A valid contract string with a malformed notes shape still counts as
// success with empty notes.
func parseRefinement(raw string) (string, []model.AINote, bool) {
	cleaned := utils.ExtractJSON(utils.StripCodeFences(raw))

	var payload struct {
		Contract json.RawMessage `json:"contract"`
		Notes    json.RawMessage `json:"notes"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return "", nil, false
	}

	var contract string
	if err := json.Unmarshal(payload.Contract, &contract); err != nil {
		return "", nil, false
	}

	notes := []model.AINote{}
	if len(payload.Notes) > 0 {
		if err := json.Unmarshal(payload.Notes, &notes); err != nil {
			notes = []model.AINote{}
		}
	}

	return contract, notes, true
}
