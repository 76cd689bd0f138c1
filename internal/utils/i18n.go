package utils

// Minimal CLI-side i18n for fixed keys. The question master is Japanese
// only; these cover the prompt and result strings around it.

var translations = map[string]map[string]string{
	"ja": {
		"prompt.retry": "回答は半角英数1〜4で入力してください。",
		"prompt.progress": "（%d／%d問）",
		"verdict.high": "あなたは高ストレス状態です。",
		"verdict.low": "あなたは高ストレスではありません。",
		"method.sumup": "合計点数方式",
		"method.conversion": "素点換算表方式",
		"result.domains": "領域Ａ: %d ／ 領域Ｂ: %d ／ 領域Ｃ: %d",
		"bulk.row": "id = %s, 領域 = (%d, %d, %d), 高ストレス = %v",
		"bulk.rowerror": "読み取りエラー: %v",
		"bulk.summary.header": "---- 集計 ----",
		"bulk.summary.count": "回答者数: %d（うち高ストレス %d 名, %.1f%%）",
		"bulk.summary.means": "平均点 領域Ａ: %.1f ／ 領域Ｂ: %.1f ／ 領域Ｃ: %.1f",
		"bulk.summary.alpha": "クロンバックα: %.3f（n=%d）",
	},
	"en": {
		"prompt.retry": "Please answer with a single digit from 1 to 4.",
		"prompt.progress": "(question %d of %d)",
		"verdict.high": "You are classified as high stress.",
		"verdict.low": "You are not classified as high stress.",
		"method.sumup": "sum-up method",
		"method.conversion": "conversion-table method",
		"result.domains": "domain A: %d / domain B: %d / domain C: %d",
		"bulk.row": "id = %s, domains = (%d, %d, %d), high_stress = %v",
		"bulk.rowerror": "read error: %v",
		"bulk.summary.header": "---- summary ----",
		"bulk.summary.count": "respondents: %d (high stress %d, %.1f%%)",
		"bulk.summary.means": "mean totals A: %.1f / B: %.1f / C: %.1f",
		"bulk.summary.alpha": "Cronbach's alpha: %.3f (n=%d)",
	},
}

// T returns the translated string for key in locale; falls back to
// Japanese, the questionnaire's canonical language.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := translations["ja"][key]; ok {
		return v
	}
	return key
}
