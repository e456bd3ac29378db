package drill

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

var ErrInputClosed = errors.New("input closed before the drill finished")

const optionLetters = "ABCD"

// RunInteractive asks every question on out, reads answers from in and
// renders the results. When loading the next batch fails the user is asked
// whether to retry; declining ends the drill with that error.
func RunInteractive(ctx context.Context, s *Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for s.State() != Complete {
		q, err := s.Current()
		if err != nil {
			return err
		}
		index, total := s.Progress()
		printQuestion(out, q, index, total)

		answer, err := readAnswer(scanner, out)
		if err != nil {
			return err
		}

		for {
			err := s.Submit(ctx, answer)
			if err == nil {
				break
			}
			fmt.Fprintf(out, "\nCould not load the next questions: %v\n", err)
			retry, rerr := confirm(scanner, out, "Retry? [Y/n] ")
			if rerr != nil {
				return rerr
			}
			if !retry {
				return err
			}
		}
	}

	result, err := s.Result()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	return Render(out, result)
}

func printQuestion(out io.Writer, q quiz.Question, index, total int) {
	fmt.Fprintf(out, "\nQuestion %d of %d\n%s\n", index+1, total, q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(out, "  %c) %s\n", optionLetters[i], opt)
	}
}

// readAnswer accepts a letter or a 1-based number; "s" skips the question.
func readAnswer(scanner *bufio.Scanner, out io.Writer) (quiz.Answer, error) {
	for {
		fmt.Fprint(out, "Your answer (A-D, s to skip): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return quiz.Answer{}, err
			}
			return quiz.Answer{}, ErrInputClosed
		}
		if a, ok := parseAnswer(scanner.Text()); ok {
			return a, nil
		}
		fmt.Fprintln(out, "Please pick one of A, B, C or D.")
	}
}

func parseAnswer(line string) (quiz.Answer, bool) {
	line = strings.ToUpper(strings.TrimSpace(line))
	if len(line) != 1 {
		return quiz.Answer{}, false
	}
	if line == "S" {
		return quiz.Answer{}, true
	}
	if i := strings.Index(optionLetters, line); i >= 0 {
		return quiz.Chosen(i), true
	}
	if line[0] >= '1' && int(line[0]-'1') < quiz.OptionCount {
		return quiz.Chosen(int(line[0] - '1')), true
	}
	return quiz.Answer{}, false
}

func confirm(scanner *bufio.Scanner, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, err
		}
		return false, ErrInputClosed
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "", "y", "yes":
		return true, nil
	}
	return false, nil
}
