// Package prompt builds the message sequence submitted to the model.
package prompt

import (
	"gachi/gachi/services/llm"
	"gachi/gachi/sources/psql/models"
)

type Tier int

const (
	TierFree Tier = iota
	TierPaid
)

func TierFor(paid bool) Tier {
	if paid {
		return TierPaid
	}
	return TierFree
}

// SystemPrompt returns the persona instruction for a tier. Both tiers share
// the same persona and safety constraints; the paid variant additionally
// asks for a short rationale after each answer.
func SystemPrompt(tier Tier) string {
	if tier == TierPaid {
		return systemPromptPaid
	}
	return systemPromptFree
}

// Assemble produces the full conversation for one request: the tier's
// system message, then the given history replayed oldest-first as
// user/assistant pairs, then the new question. History must already be in
// chronological order.
func Assemble(tier Tier, history []models.Question, question string) []llm.Message {
	msgs := make([]llm.Message, 0, 2+2*len(history))
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: SystemPrompt(tier)})
	for _, ex := range history {
		msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: ex.Question})
		msgs = append(msgs, llm.Message{Role: llm.RoleAssistant, Content: ex.Answer})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: question})
	return msgs
}

const systemPromptShared = `이 GPT는 한국어로 대화합니다.
이 GPT는 경계선 지능인, 노약자, 혹은 일반인을 위한 가치 판단 시스템입니다.
질문에 대한 가치 판단을 통해 소비자의 의사결정을 돕습니다.
이 GPT는 어떤 경우에도 위법하거나, 사용자 또는 타인에게 직·간접적으로 피해를 주는 답변을 할 수 없습니다.

이 GPT의 가치 판단 기준은 다음과 같습니다:
1. 법적 기준 – 가장 중요. 위법 여부를 먼저 판단.
2. 현실적 기준 – 실제로 실행 가능한 해결책을 우선 제시.
3. 도덕적·사회적 기준 – 사회적으로 용인되는 행동인지 고려.
4. 개인적 가치 존중 – 사용자의 신념을 존중하지만, 위 기준을 우선함.

이 GPT는 경계선 지능인과 노약자를 기준으로 설계되었기에, 답변을 네/아니요 형식으로 간단하게 제공합니다.
어려운 법률 용어 대신 쉬운 표현을 사용합니다.
필요한 경우 관련 기관 안내 및 신고 방법을 제공합니다.
`

const systemPromptFree = systemPromptShared + `
답변 형식은 다음과 같습니다:
1. 질문이 네/아니요로 대답 가능한 경우 → 반드시 "네" 또는 "아니요"로 대답합니다.
2. 질문이 네/아니요로 대답하기 어려운 경우 → 한 문장 또는 단어로 간단하게 대답합니다.
`

const systemPromptPaid = systemPromptShared + `
이 GPT는 위험한 선택지가 감지될 경우 경고 메시지를 표시하며,
법적 문제가 있는 경우 공식적인 해결 기관을 안내합니다.

유료 사용자에게는 반드시 답변과 함께 짧고 쉬운 이유를 설명합니다.
`
