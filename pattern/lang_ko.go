package pattern

import (
	"github.com/lokascript/semantic-go/semantic"
)

// koreanPatterns anchors on the object and locative particles. The "ko"
// profile is matched unspaced because particles attach to the host word.
func koreanPatterns() []*Pattern {
	const lang = "ko"
	return []*Pattern{
		hp(lang, semantic.ActionToggle, 0,
			Slot(rPatient), Lit("를", "을"), Opt(Slot(rDest), Lit("에")), Lit("토글", "전환")),
		hp(lang, semantic.ActionAdd, 0,
			Slot(rPatient), Lit("를", "을"), Opt(Slot(rDest), Lit("에")), Lit("추가")),
		hp(lang, semantic.ActionRemove, 0,
			Slot(rPatient), Lit("를", "을"), Opt(Slot(rSource), Lit("에서")), Lit("제거", "삭제")),
		hp(lang, semantic.ActionPut, 0,
			Slot(rPatient), Lit("를", "을"), Slot(rDest), Lit("에"), Lit("넣기", "넣어")),
		hp(lang, semantic.ActionShow, 0,
			Opt(Slot(rPatient), Lit("를", "을")), Lit("표시")),
		hp(lang, semantic.ActionHide, 0,
			Opt(Slot(rPatient), Lit("를", "을")), Lit("숨기기", "숨겨")),
		hp(lang, semantic.ActionOn, 0,
			Slot(rEvent), Lit("하면", "할 때")),
		hp(lang, semantic.ActionWait, 0,
			Slot(rDuration), Lit("대기", "기다려")),
		hp(lang, semantic.ActionLog, 0,
			Slot(rPatient), Lit("를", "을"), Lit("기록")),
		hp(lang, semantic.ActionIf, 0,
			Lit("만약"), Slot(rCondition)),
	}
}
