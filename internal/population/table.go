package population

// districtPopulation holds resident registration counts for major Korean
// districts, 2024 figures. Acts as the first lookup tier so common regions
// resolve without a network call.
var districtPopulation = map[string]int{
	// 서울특별시
	"서울 강남구":  560000,
	"서울 서초구":  420000,
	"서울 송파구":  660000,
	"서울 강동구":  450000,
	"서울 강서구":  580000,
	"서울 양천구":  470000,
	"서울 영등포구": 390000,
	"서울 구로구":  420000,
	"서울 금천구":  240000,
	"서울 관악구":  510000,
	"서울 동작구":  400000,
	"서울 마포구":  380000,
	"서울 서대문구": 320000,
	"서울 은평구":  490000,
	"서울 노원구":  550000,
	"서울 도봉구":  340000,
	"서울 강북구":  320000,
	"서울 성북구":  460000,
	"서울 중랑구":  410000,
	"서울 동대문구": 360000,
	"서울 광진구":  360000,
	"서울 성동구":  310000,
	"서울 용산구":  240000,
	"서울 중구":   130000,
	"서울 종로구":  160000,

	// 부산광역시
	"부산 해운대구": 410000,
	"부산 부산진구": 380000,
	"부산 북구":   300000,
	"부산 사상구":  230000,
	"부산 사하구":  330000,
	"부산 동래구":  270000,
	"부산 남구":   280000,
	"부산 연제구":  210000,
	"부산 수영구":  180000,
	"부산 금정구":  250000,
	"부산 강서구":  140000,
	"부산 동구":   95000,
	"부산 서구":   110000,
	"부산 영도구":  120000,
	"부산 중구":   45000,
	"부산 기장군":  180000,

	// 대구광역시
	"대구 수성구": 420000,
	"대구 달서구": 580000,
	"대구 북구":  440000,
	"대구 동구":  340000,
	"대구 서구":  210000,
	"대구 남구":  160000,
	"대구 중구":  80000,
	"대구 달성군": 260000,

	// 인천광역시
	"인천 남동구":  520000,
	"인천 부평구":  510000,
	"인천 서구":   550000,
	"인천 계양구":  320000,
	"인천 연수구":  340000,
	"인천 미추홀구": 410000,
	"인천 동구":   70000,
	"인천 중구":   140000,
	"인천 강화군":  70000,
	"인천 옹진군":  22000,

	// 광주광역시
	"광주 북구":  450000,
	"광주 서구":  310000,
	"광주 남구":  220000,
	"광주 동구":  95000,
	"광주 광산구": 390000,

	// 대전광역시
	"대전 유성구": 350000,
	"대전 서구":  480000,
	"대전 중구":  250000,
	"대전 동구":  230000,
	"대전 대덕구": 210000,

	// 울산광역시
	"울산 남구":  340000,
	"울산 북구":  210000,
	"울산 동구":  170000,
	"울산 중구":  230000,
	"울산 울주군": 230000,

	// 세종특별자치시
	"세종": 380000,

	// 경기도
	"경기 수원시":  1200000,
	"경기 성남시":  950000,
	"경기 고양시":  1050000,
	"경기 용인시":  1080000,
	"경기 부천시":  820000,
	"경기 안산시":  660000,
	"경기 안양시":  550000,
	"경기 남양주시": 720000,
	"경기 화성시":  950000,
	"경기 평택시":  580000,
	"경기 의정부시": 460000,
	"경기 시흥시":  490000,
	"경기 파주시":  480000,
	"경기 김포시":  520000,
	"경기 광명시":  280000,
	"경기 광주시":  420000,
	"경기 군포시":  280000,
	"경기 하남시":  300000,
	"경기 오산시":  230000,
	"경기 양주시":  230000,
	"경기 이천시":  220000,
	"경기 구리시":  190000,
	"경기 안성시":  190000,
	"경기 포천시":  150000,
	"경기 의왕시":  160000,
	"경기 여주시":  110000,
	"경기 동두천시": 95000,
	"경기 과천시":  56000,

	// 강원특별자치도
	"강원 춘천시": 280000,
	"강원 원주시": 360000,
	"강원 강릉시": 210000,
	"강원 동해시": 92000,
	"강원 태백시": 42000,
	"강원 속초시": 82000,
	"강원 삼척시": 65000,

	// 충청북도
	"충북 청주시": 850000,
	"충북 충주시": 210000,
	"충북 제천시": 135000,

	// 충청남도
	"충남 천안시": 680000,
	"충남 아산시": 330000,
	"충남 서산시": 180000,
	"충남 논산시": 120000,
	"충남 계룡시": 46000,
	"충남 당진시": 170000,

	// 전라북도
	"전북 전주시": 660000,
	"전북 익산시": 280000,
	"전북 군산시": 270000,
	"전북 정읍시": 110000,
	"전북 남원시": 82000,
	"전북 김제시": 85000,

	// 전라남도
	"전남 목포시": 230000,
	"전남 여수시": 280000,
	"전남 순천시": 280000,
	"전남 나주시": 120000,
	"전남 광양시": 160000,

	// 경상북도
	"경북 포항시": 500000,
	"경북 경주시": 250000,
	"경북 구미시": 410000,
	"경북 김천시": 140000,
	"경북 안동시": 160000,
	"경북 경산시": 280000,

	// 경상남도
	"경남 창원시": 1040000,
	"경남 김해시": 560000,
	"경남 진주시": 340000,
	"경남 양산시": 360000,
	"경남 거제시": 260000,
	"경남 통영시": 130000,
	"경남 사천시": 115000,
	"경남 밀양시": 105000,

	// 제주특별자치도
	"제주 제주시":  490000,
	"제주 서귀포시": 190000,
}
