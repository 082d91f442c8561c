// Package entity はresumeanalysisフィーチャーのドメインモデルを定義します。
package entity

// Analysis はレジュメ1件に対する分析結果を表します。
type Analysis struct {
	Text     string // プロバイダーが返した分析テキスト（無加工）
	Fallback bool   // 空応答のため代替文言に置き換えた場合 true
}
