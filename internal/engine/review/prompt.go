package review

import "fmt"

const promptTemplate = `다음 코드를 검토하고 상세한 분석을 한글로 제공해주세요.
다음 주요 측면들에 집중해주세요:

1. 코드 품질:
   - 클린 코드 원칙
   - 코드 구조
   - 명명 규칙
   - 함수/메서드 길이
   - 코드 중복

2. 모범 사례:
   - TypeScript/JavaScript 모범 사례
   - 오류 처리
   - 성능 고려사항
   - 보안 고려사항

3. 잠재적 문제:
   - 버그 위험
   - 엣지 케이스
   - 오류 시나리오
   - 성능 병목

4. 구체적 제안:
   - 구체적인 코드 개선점
   - 대안적 접근 방법
   - 최적화 기회

다음 JSON 형식으로 검토 결과를 제공해주세요:
{
    "summary": "코드 개요",
    "issues": [
        {
            "severity": "high|medium|low",
            "category": "quality|security|performance|maintainability",
            "description": "문제 설명",
            "suggestion": "개선 방법",
            "line_numbers": [해당되는 줄 번호]
        }
    ],
    "best_practices": [
        "코드에서 발견된 좋은 사례들"
    ],
    "suggestions": [
        "개선 제안 사항들"
    ]
}

소스 코드 (%s):
%s
`

// BuildPrompt asks the model for a review of source in the JSON shape of Result.
func BuildPrompt(source, filePath string) string {
	return fmt.Sprintf(promptTemplate, filePath, source)
}
