// Package fuzztests houses Go fuzz harnesses for the lugha pipeline
// (source -> lexer -> transpiler). They check that every input terminates,
// keeps the token stream invariants and never panics.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер и транспилятор.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
