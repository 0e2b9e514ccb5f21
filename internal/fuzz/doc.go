// Package fuzztests houses Go fuzz harnesses for the lexer, the syntax
// factory and the fixture reader. Its goal is to smoke test robustness and
// the lossless invariants on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер, фабрику и чтение фикстур.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
