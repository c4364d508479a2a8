package pattern

import (
	"github.com/lokascript/semantic-go/semantic"
)

// chinesePatterns covers the SVO unspaced forms, including the 把
// disposal construction for put, which fronts the patient and cannot be
// synthesized from the profile.
func chinesePatterns() []*Pattern {
	const lang = "zh"
	return []*Pattern{
		hp(lang, semantic.ActionToggle, 0,
			Lit("切换"), Slot(rPatient), Opt(Lit("到", "在"), Slot(rDest))),
		hp(lang, semantic.ActionAdd, 0,
			Lit("添加"), Slot(rPatient), Opt(Lit("到"), Slot(rDest))),
		hp(lang, semantic.ActionRemove, 0,
			Lit("移除", "删除"), Slot(rPatient)),
		hp(lang, semantic.ActionPut, PriorityHandAuthored+10,
			Lit("把"), Slot(rPatient), Lit("放到", "放入"), Slot(rDest)),
		hp(lang, semantic.ActionPut, 0,
			Lit("放置", "放"), Slot(rPatient), Lit("到"), Slot(rDest)),
		hp(lang, semantic.ActionSet, 0,
			Lit("设置"), Slot(rDest), Lit("为"), Slot(rPatient)),
		hp(lang, semantic.ActionShow, 0,
			Lit("显示"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionHide, 0,
			Lit("隐藏"), Opt(Slot(rPatient))),
		hp(lang, semantic.ActionOn, 0,
			Lit("当"), Slot(rEvent), Lit("时")),
		hp(lang, semantic.ActionWait, 0,
			Lit("等待"), Opt(Slot(rDuration))),
		hp(lang, semantic.ActionIncrement, 0,
			Lit("增加"), Slot(rPatient)),
		hp(lang, semantic.ActionLog, 0,
			Lit("记录"), Slot(rPatient)),
		hp(lang, semantic.ActionIf, 0,
			Lit("如果"), Slot(rCondition)),
	}
}
