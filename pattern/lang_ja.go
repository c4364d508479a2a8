package pattern

import (
	"github.com/lokascript/semantic-go/semantic"
)

// japanesePatterns covers the SOV particle idioms. Matching is unspaced:
// particles anchor directly as substrings of the script.
//
// The event-handler command carries two distinct idioms — the temporal
// noun form ("クリックの時") and the conditional suffix ("クリックしたら") —
// registered as separate patterns for the same command.
func japanesePatterns() []*Pattern {
	const lang = "ja"
	return []*Pattern{
		hp(lang, semantic.ActionToggle, 0,
			Slot(rPatient), Lit("を"), Opt(Slot(rDest), Lit("に")), Lit("切り替え", "切り替える")),
		hp(lang, semantic.ActionAdd, 0,
			Slot(rPatient), Lit("を"), Opt(Slot(rDest), Lit("に")), Lit("追加")),
		hp(lang, semantic.ActionRemove, 0,
			Slot(rPatient), Lit("を"), Opt(Slot(rSource), Lit("から")), Lit("削除")),
		hp(lang, semantic.ActionPut, 0,
			Slot(rPatient), Lit("を"), Slot(rDest), Lit("に"), Lit("入れる", "入れて")),
		hp(lang, semantic.ActionSet, 0,
			Slot(rDest), Lit("を"), Slot(rPatient), Lit("に"), Lit("設定")),
		hp(lang, semantic.ActionShow, 0,
			Opt(Slot(rPatient), Lit("を")), Lit("表示")),
		hp(lang, semantic.ActionHide, 0,
			Opt(Slot(rPatient), Lit("を")), Lit("非表示", "隠す")),
		hp(lang, semantic.ActionOn, 0,
			Slot(rEvent), Lit("の時", "時に")),
		hp(lang, semantic.ActionOn, 0,
			Slot(rEvent), Lit("したら", "たら")),
		hp(lang, semantic.ActionWait, 0,
			Slot(rDuration), Lit("待つ", "待機")),
		hp(lang, semantic.ActionIncrement, 0,
			Slot(rPatient), Lit("を"), Opt(Slot(rQuantity), Lit("ずつ")), Lit("増やす", "増加")),
		hp(lang, semantic.ActionLog, 0,
			Slot(rPatient), Lit("を"), Lit("記録")),
		hp(lang, semantic.ActionFetch, 0,
			Slot(rSource), Lit("を"), Lit("取得")),
		hp(lang, semantic.ActionIf, 0,
			Lit("もし"), Slot(rCondition), Opt(Lit("なら"))),
	}
}
