package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal 从输入读取用户名（可见）与密码（终端上隐藏回显）。
// In 为终端时密码使用 term.ReadPassword，否则按行读取（便于管道/测试）。
type Terminal struct {
	In  *os.File
	Out io.Writer

	reader *bufio.Reader
}

// New 返回从 in 读取、向 out 输出提示的 Terminal。
// 提示写到 stderr 以免污染 stdout 数据输出。
func New(in *os.File, out io.Writer) *Terminal {
	return &Terminal{In: in, Out: out}
}

func (t *Terminal) lineReader() *bufio.Reader {
	if t.reader == nil {
		t.reader = bufio.NewReader(t.In)
	}
	return t.reader
}

// PromptUsername 打印 label 并读取一行。
func (t *Terminal) PromptUsername(label string) (string, error) {
	_, _ = fmt.Fprint(t.Out, label)
	line, err := readLine(t.lineReader())
	if err != nil {
		return "", fmt.Errorf("failed to read username: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword 打印 label 并读取密码；终端上不回显。
func (t *Terminal) PromptPassword(label string) (string, error) {
	_, _ = fmt.Fprint(t.Out, label)
	fd := int(t.In.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(t.Out) // 隐藏输入后补换行
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}
	line, err := readLine(t.lineReader())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return line, nil
}

// readLine 读取一行并去掉行尾换行；最后一行无换行时也接受。
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
