// Package scorer rates the relevance of a conference against a research
// abstract.
//
// The scorer package exposes a single-operation Scorer interface so the
// pipeline can run against a test double, and an OpenAI-backed
// implementation that asks a chat model for a structured {score,
// justification} verdict. Scores are not deterministic: the same conference
// may score differently across calls or model versions, so callers must only
// rely on the 0-10 range and threshold behavior.
package scorer
