package keyword

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"placerank/internal/category"
	"placerank/internal/llm"
	"placerank/internal/metrics"
	"placerank/internal/models"
)

// Target candidate counts per level, longtail-heavy.
var levelQuotas = map[int]int{
	models.LevelLongtail:    15,
	models.LevelNiche:       10,
	models.LevelMedium:      5,
	models.LevelCompetitive: 3,
	models.LevelTop:         2,
}

// minPrimaryCandidates is the smallest usable model output; anything less
// triggers the template fallback.
const minPrimaryCandidates = 10

// denyTerms are bare superlatives. A candidate containing one must also
// carry location or specialty content, otherwise it is filtered out as a
// low-signal keyword.
var denyTerms = []string{"베스트", "최고", "1등", "인기", "핫플", "유명"}

// Building blocks for business types without a template file.
var (
	genericModifiers = []string{"추천", "잘하는곳", "가격", "후기", "위치", "영업시간", "전화번호"}
	genericPurposes  = []string{"근처", "예약", "상담", "방문"}
	genericQualities = []string{"좋은", "유명한", "저렴한", "괜찮은"}
)

// Generator produces keyword candidates, model-first with a deterministic
// template fallback.
type Generator struct {
	llm        llm.Client
	categories *category.Store
	log        *slog.Logger
}

func NewGenerator(client llm.Client, categories *category.Store, log *slog.Logger) *Generator {
	if client == nil {
		client = llm.Disabled{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Generator{llm: client, categories: categories, log: log}
}

// Generate returns roughly 35 keyword candidates spanning levels 1-5 for a
// business. The model path is tried first; on failure or thin output the
// category template (or generic expansion) takes over. Output is
// deduplicated by exact keyword text.
func (g *Generator) Generate(ctx context.Context, businessType, location string, specialty []string) []models.KeywordCandidate {
	if cands := g.fromModel(ctx, businessType, location, specialty); len(cands) >= minPrimaryCandidates {
		metrics.RecordFallback("generator", "model")
		return cands
	}

	metrics.RecordFallback("generator", "template")
	if tpl, ok := g.categories.Get(businessType); ok {
		return dedupe(g.fromTemplate(tpl, businessType, location, specialty))
	}
	return dedupe(g.fromGeneric(businessType, location, specialty))
}

func (g *Generator) fromModel(ctx context.Context, businessType, location string, specialty []string) []models.KeywordCandidate {
	prompt := g.buildPrompt(businessType, location, specialty)
	raw, err := g.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		if err != llm.ErrUnavailable {
			g.log.Warn("keyword model call failed", "business_type", businessType, "error", err)
		}
		return nil
	}

	cands, err := parseCandidates(raw)
	if err != nil {
		g.log.Warn("keyword model output unparseable", "error", err)
		return nil
	}

	out := make([]models.KeywordCandidate, 0, len(cands))
	for _, c := range cands {
		c.Keyword = strings.Join(strings.Fields(c.Keyword), " ")
		if c.Keyword == "" {
			continue
		}
		if !models.ValidLevel(c.Level) {
			c.Level = inferLevel(c.Keyword)
		}
		if denied(c.Keyword, location, specialty) {
			continue
		}
		out = append(out, c)
	}
	return dedupe(out)
}

const systemPrompt = "당신은 네이버 플레이스 로컬 검색 최적화 전문가입니다. 항상 한국어로, 유효한 JSON으로만 응답하세요."

func (g *Generator) buildPrompt(businessType, location string, specialty []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "업종: %s\n지역: %s\n", businessType, location)
	if len(specialty) > 0 {
		fmt.Fprintf(&b, "핵심 차별화 요소 (필수 반영): %s\n", strings.Join(specialty, ", "))
		fmt.Fprintf(&b, "모든 키워드는 위 특징 중 최소 1개를 포함하거나 그 검색 의도를 반영해야 합니다.\n")
		fmt.Fprintf(&b, "특징에 없는 다른 전문분야는 사용하지 마세요.\n")
	}

	if tpl, ok := g.categories.Get(businessType); ok && len(tpl.Modifiers) > 0 {
		b.WriteString("\n업종별 실제 검색 패턴:\n")
		for _, key := range sortedKeys(tpl.Modifiers) {
			values := tpl.Modifiers[key]
			if len(values) > 5 {
				values = values[:5]
			}
			fmt.Fprintf(&b, "- %s: %s\n", key, strings.Join(values, ", "))
		}
	}

	b.WriteString(`
실제 모바일 검색에서 쓰일 자연스러운 한국어 키워드를 5단계 난이도로 생성하세요:
- Level 5 (롱테일, 15개): 구체적 위치/목적/상황 조합, 조사 사용 ("에서", "의")
- Level 4 (니치, 10개): 랜드마크·시간대·상황 활용
- Level 3 (중간, 5개): 지역 + 특징 + 업종, 조사 필수
- Level 2 (경쟁, 3개): 광역 지역 + 핵심 키워드
- Level 1 (최상위, 2개): 전국 단위 초경쟁 키워드, 지역 제거

좋은 예: "강남역에서 브런치 먹기 좋은 조용한 카페" (조사 + 목적 + 분위기)
나쁜 예: "강남 브런치 카페 추천 베스트 맛집" (명사 나열, 부자연스러움)

JSON 배열로만 반환하세요:
[{"keyword": "...", "level": 5, "reason": "..."}]
`)
	return b.String()
}

// parseCandidates tolerates the model wrapping its JSON in a fenced code
// block.
func parseCandidates(raw string) ([]models.KeywordCandidate, error) {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "```"); i >= 0 {
		raw = raw[i+3:]
		raw = strings.TrimPrefix(raw, "json")
		if j := strings.Index(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
	}
	var cands []models.KeywordCandidate
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &cands); err != nil {
		return nil, fmt.Errorf("keyword: parse candidates: %w", err)
	}
	return cands, nil
}

// denied filters bare superlatives that carry no location or specialty
// content.
func denied(keyword, location string, specialty []string) bool {
	hit := false
	for _, term := range denyTerms {
		if strings.Contains(keyword, term) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}
	for _, part := range strings.Fields(location) {
		if strings.Contains(keyword, part) {
			return false
		}
	}
	for _, s := range specialty {
		if s != "" && strings.Contains(keyword, s) {
			return false
		}
	}
	return true
}

// inferLevel assigns a level from keyword length when the model omitted or
// botched it: longer means more specific.
func inferLevel(keyword string) int {
	words := len(strings.Fields(keyword))
	switch {
	case words >= 5:
		return models.LevelLongtail
	case words == 4:
		return models.LevelNiche
	case words == 3:
		return models.LevelMedium
	case words == 2:
		return models.LevelCompetitive
	default:
		return models.LevelTop
	}
}

// fromTemplate expands a category template into candidates. All iteration is
// index-based over sorted keys, so repeated calls yield identical output.
func (g *Generator) fromTemplate(tpl *category.Template, businessType, location string, specialty []string) []models.KeywordCandidate {
	spec := firstNonEmpty(specialty)
	bases := tpl.BaseKeywords
	if len(bases) == 0 {
		bases = []string{category.Normalize(businessType)}
	}
	modKeys := sortedKeys(tpl.Modifiers)
	locationParts := strings.Fields(location)

	var out []models.KeywordCandidate
	add := func(kw string, level int, reason string) {
		out = append(out, models.KeywordCandidate{
			Keyword: strings.Join(strings.Fields(kw), " "),
			Level:   level,
			Reason:  reason,
		})
	}

	// Level 5: longtail patterns with placeholders substituted.
	for i := 0; i < levelQuotas[models.LevelLongtail]; i++ {
		switch {
		case len(tpl.LongtailPatterns) > 0:
			pattern := tpl.LongtailPatterns[i%len(tpl.LongtailPatterns)]
			kw := instantiatePattern(pattern, location, tpl.Modifiers, modKeys, i)
			if strings.Contains(kw, "{") { // unresolved placeholder
				kw = fmt.Sprintf("%s %s %s 추천", location, spec, bases[i%len(bases)])
			} else if spec != "" {
				kw = strings.Replace(kw, location, location+" "+spec, 1)
			}
			add(kw, models.LevelLongtail, "롱테일 패턴 조합")
		case spec != "" && len(modKeys) > 0:
			key := modKeys[i%len(modKeys)]
			values := tpl.Modifiers[key]
			add(fmt.Sprintf("%s %s %s %s", location, spec, values[i%len(values)], bases[i%len(bases)]),
				models.LevelLongtail, fmt.Sprintf("'%s' 특징 + %s", spec, key))
		default:
			add(fmt.Sprintf("%s %s %s 추천", location, bases[i%len(bases)], genericModifiers[i%len(genericModifiers)]),
				models.LevelLongtail, "롱테일 키워드")
		}
	}

	// Level 4: one modifier value per candidate.
	for i := 0; i < levelQuotas[models.LevelNiche]; i++ {
		base := bases[i%len(bases)]
		switch {
		case spec != "" && len(modKeys) > 0:
			key := modKeys[i%len(modKeys)]
			values := tpl.Modifiers[key]
			add(fmt.Sprintf("%s %s %s %s", location, spec, values[(i/len(modKeys))%len(values)], base),
				models.LevelNiche, fmt.Sprintf("'%s' + %s", spec, key))
		case len(modKeys) > 0:
			key := modKeys[i%len(modKeys)]
			values := tpl.Modifiers[key]
			add(fmt.Sprintf("%s %s %s", location, values[(i/len(modKeys))%len(values)], base),
				models.LevelNiche, key+" 반영")
		default:
			add(fmt.Sprintf("%s %s %s", location, base, genericModifiers[i%len(genericModifiers)]),
				models.LevelNiche, "니치 키워드")
		}
	}

	// Level 3: specialty (or a modifier) between location and base.
	for i, base := range bases {
		if i >= levelQuotas[models.LevelMedium] {
			break
		}
		if spec != "" {
			add(fmt.Sprintf("%s %s %s", location, spec, base), models.LevelMedium, "지역 + 특징 + 업종")
		} else if len(modKeys) > 0 {
			key := modKeys[i%len(modKeys)]
			values := tpl.Modifiers[key]
			add(fmt.Sprintf("%s %s %s", location, values[i%len(values)], base), models.LevelMedium, key+" 반영")
		} else {
			add(fmt.Sprintf("%s %s", location, base), models.LevelMedium, "중간 키워드")
		}
	}
	for i := len(bases); i < levelQuotas[models.LevelMedium]; i++ {
		add(fmt.Sprintf("%s %s %s", location, bases[i%len(bases)], genericModifiers[i%len(genericModifiers)]),
			models.LevelMedium, "중간 키워드")
	}

	// Level 2: widest location token, head terms.
	broad := location
	if len(locationParts) >= 2 {
		broad = locationParts[0]
	}
	for i := 0; i < levelQuotas[models.LevelCompetitive]; i++ {
		add(fmt.Sprintf("%s %s", broad, bases[i%len(bases)]), models.LevelCompetitive, "광역 경쟁 키워드")
	}

	// Level 1: head terms, little or no location.
	name := category.Normalize(businessType)
	if len(locationParts) >= 2 {
		add(fmt.Sprintf("%s %s", locationParts[0], name), models.LevelTop, "광역 초경쟁 키워드")
	} else if spec != "" {
		add(fmt.Sprintf("%s %s", spec, name), models.LevelTop, "특징 중심 키워드")
	} else {
		add(name+" 추천", models.LevelTop, "초경쟁 키워드")
	}
	add(name, models.LevelTop, "최상위 키워드")

	return out
}

// fromGeneric covers business types with no template, combining the generic
// modifier lists.
func (g *Generator) fromGeneric(businessType, location string, specialty []string) []models.KeywordCandidate {
	spec := firstNonEmpty(specialty)
	name := strings.TrimSpace(businessType)
	locationParts := strings.Fields(location)

	var out []models.KeywordCandidate
	add := func(kw string, level int, reason string) {
		out = append(out, models.KeywordCandidate{
			Keyword: strings.Join(strings.Fields(kw), " "),
			Level:   level,
			Reason:  reason,
		})
	}

	for i := 0; i < levelQuotas[models.LevelLongtail]; i++ {
		switch {
		case spec != "" && i < 5:
			add(fmt.Sprintf("%s %s %s %s", location, spec, genericQualities[i%len(genericQualities)], name),
				models.LevelLongtail, "특징 + 품질 롱테일")
		case spec != "" && i < 10:
			add(fmt.Sprintf("%s %s %s %s", location, spec, name, genericPurposes[i%len(genericPurposes)]),
				models.LevelLongtail, "특징 + 목적 롱테일")
		case spec != "":
			add(fmt.Sprintf("%s %s %s %s", location, spec, name, genericModifiers[i%len(genericModifiers)]),
				models.LevelLongtail, "특징 + 수식어 롱테일")
		default:
			add(fmt.Sprintf("%s %s %s %s", location, genericQualities[i%len(genericQualities)], name, genericModifiers[i%len(genericModifiers)]),
				models.LevelLongtail, "롱테일 키워드")
		}
	}

	for i := 0; i < 7 && i < len(genericModifiers); i++ {
		if spec != "" {
			add(fmt.Sprintf("%s %s %s %s", location, spec, name, genericModifiers[i]), models.LevelNiche, "특징 니치 키워드")
		} else {
			add(fmt.Sprintf("%s %s %s", location, name, genericModifiers[i]), models.LevelNiche, "니치 키워드")
		}
	}
	for i := 0; i < 3 && i < len(genericQualities); i++ {
		if spec != "" {
			add(fmt.Sprintf("%s %s %s %s", location, spec, genericQualities[i], name), models.LevelNiche, "특징 + 품질 키워드")
		} else {
			add(fmt.Sprintf("%s %s %s", location, genericQualities[i], name), models.LevelNiche, "니치 키워드")
		}
	}

	mediumSuffixes := []string{"", "추천", "가격", "후기", "예약"}
	for _, suffix := range mediumSuffixes {
		kw := strings.TrimSpace(fmt.Sprintf("%s %s %s %s", location, spec, name, suffix))
		add(kw, models.LevelMedium, "중간 키워드")
	}

	broad := location
	if len(locationParts) >= 2 {
		broad = locationParts[0]
	}
	add(fmt.Sprintf("%s %s", broad, name), models.LevelCompetitive, "광역 경쟁 키워드")
	add(fmt.Sprintf("%s %s 추천", broad, name), models.LevelCompetitive, "광역 추천 키워드")
	add(fmt.Sprintf("%s %s 잘하는곳", broad, name), models.LevelCompetitive, "광역 품질 키워드")

	if len(locationParts) >= 2 {
		add(fmt.Sprintf("%s %s", locationParts[0], name), models.LevelTop, "광역 초경쟁 키워드")
	} else if spec != "" {
		add(fmt.Sprintf("%s %s", spec, name), models.LevelTop, "특징 중심 키워드")
	} else {
		add(name+" 추천", models.LevelTop, "초경쟁 키워드")
	}
	add(name, models.LevelTop, "최상위 키워드")

	return out
}

// instantiatePattern fills {지역} and modifier-type placeholders in a
// longtail pattern, picking values by index for determinism.
func instantiatePattern(pattern, location string, modifiers map[string][]string, modKeys []string, i int) string {
	kw := strings.ReplaceAll(pattern, "{지역}", location)
	for _, key := range modKeys {
		placeholder := "{" + key + "}"
		if !strings.Contains(kw, placeholder) {
			continue
		}
		values := modifiers[key]
		kw = strings.ReplaceAll(kw, placeholder, values[i%len(values)])
	}
	return kw
}

func dedupe(cands []models.KeywordCandidate) []models.KeywordCandidate {
	seen := make(map[string]struct{}, len(cands))
	out := cands[:0]
	for _, c := range cands {
		if _, ok := seen[c.Keyword]; ok {
			continue
		}
		seen[c.Keyword] = struct{}{}
		out = append(out, c)
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
