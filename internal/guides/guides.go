// Package guides serves the static Naver Place profile optimization guide.
package guides

import "sort"

// Guide is one section of the place optimization playbook.
type Guide struct {
	Section  string `json:"section"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
}

var sections = map[string]Guide{
	"business_name": {
		Section: "business_name",
		Title:   "업체명 최적화",
		Content: `### 원칙
- 공식 상호명 사용 (사업자등록증)
- 브랜드 일관성 유지
- 검색 가능성 고려

### 금지사항
- 키워드 나열
- 과도한 특수문자
- 허위 정보

### 좋은 예시
- "브라보치킨 해운대점"
- "카페 문라이트 강남"`,
		Priority: "high",
	},
	"category": {
		Section: "category",
		Title:   "카테고리 선택",
		Content: `### 선택 전략
1. 주업종 정확히 선택
2. 부업종 2-3개 추가
3. 경쟁사 카테고리 분석

### 업종별 가이드
- 음식점: 음식 종류 → 세부 메뉴
- 카페: 카페 → 디저트/브런치
- 서비스업: 핵심 서비스 → 추가 서비스`,
		Priority: "high",
	},
	"description": {
		Section: "description",
		Title:   "업체 소개글 작성",
		Content: `### 작성 공식
[첫 문장] 핵심 차별화 포인트 (20자)
[2-3문장] 주요 메뉴/서비스 (50-80자)
[마지막] 위치/접근성 정보 (30-50자)

### 작성 원칙
- 간결성: 100-200자
- 키워드 2-3개 자연스럽게 포함
- 차별화 포인트 강조`,
		Priority: "high",
	},
	"photos": {
		Section: "photos",
		Title:   "사진 등록 전략",
		Content: `### 필수 사진 (우선순위)
1. 대표 사진 (1장) - 고해상도
2. 메뉴/제품 (5-10장)
3. 내부 인테리어 (3-5장)
4. 외관 (2-3장)

### 품질 체크
- 밝고 선명
- 흔들림 없음
- 실제 색감
- 워터마크 제거`,
		Priority: "medium",
	},
	"hours": {
		Section: "hours",
		Title:   "영업시간 및 정보",
		Content: `### 정확한 정보 입력
- 요일별 영업시간
- 브레이크타임
- 정기휴무
- 임시휴무 즉시 업데이트

### 추가 정보
- 주차 가능 여부
- 예약 방법
- WiFi 제공
- 반려동물 동반`,
		Priority: "medium",
	},
	"menu": {
		Section: "menu",
		Title:   "메뉴/가격 정보",
		Content: `### 메뉴 등록 원칙
1. 대표메뉴 우선 (베스트 5개)
2. 정확한 가격
3. 메뉴 설명 (재료, 특징)
4. 사진 첨부 (각 메뉴당 1장)

### 업데이트
- 가격 변경 즉시 반영
- 신메뉴 추가
- 단종 메뉴 삭제`,
		Priority: "high",
	},
	"reviews": {
		Section: "reviews",
		Title:   "리뷰 관리",
		Content: `### 리뷰 수집 전략
- 서비스 품질로 자연스럽게 유도
- QR코드 영수증 삽입
- 금전적 보상 금지 (위법)
- 허위 리뷰 금지

### 리뷰 응답
- 긍정 리뷰: 24시간 내 응답
- 부정 리뷰: 12시간 내 응답
- 응답률 90% 이상 목표`,
		Priority: "high",
	},
	"seo": {
		Section: "seo",
		Title:   "검색 최적화",
		Content: `### 네이버 알고리즘 요소
1. 관련성: 키워드 최적화
2. 거리: 정확한 위치
3. 인기도: 리뷰 수/평점
4. 최신성: 주 1회 업데이트
5. 완성도: 프로필 100% 작성

### 주간 루틴
- 월: 공지사항 등록
- 수: 리뷰 응답
- 금: 사진/메뉴 업데이트
- 일: 통계 확인`,
		Priority: "medium",
	},
}

// All returns every guide section, sorted by section name.
func All() []Guide {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Guide, 0, len(keys))
	for _, k := range keys {
		out = append(out, sections[k])
	}
	return out
}

// Get returns one guide section by name.
func Get(section string) (Guide, bool) {
	g, ok := sections[section]
	return g, ok
}

// Sections returns the valid section names, sorted.
func Sections() []string {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
