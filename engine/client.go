package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/mancalago/mancala/mancala"
	"github.com/mancalago/mancala/notation"
)

var ErrEngine = errors.New("engine error")

// Client drives an engine over the line protocol. It is not safe for
// concurrent use.
type Client struct {
	Name string

	cmd *exec.Cmd

	stdinPipe  io.WriteCloser
	stdoutPipe io.ReadCloser

	read  *bufio.Reader
	write io.Writer
}

// Start runs cmdline as a subprocess and talks to it on its stdio.
func Start(cmdline []string) (*Client, error) {
	if len(cmdline) == 0 {
		return nil, errors.New("empty engine command")
	}
	path, err := exec.LookPath(cmdline[0])
	if err != nil {
		return nil, err
	}
	cmd := &exec.Cmd{Path: path, Args: cmdline}
	cl := &Client{cmd: cmd}

	if cl.stdinPipe, err = cmd.StdinPipe(); err != nil {
		return nil, err
	}
	if cl.stdoutPipe, err = cmd.StdoutPipe(); err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	if err := cl.handshake(cl.stdoutPipe, cl.stdinPipe); err != nil {
		cl.Close()
		return nil, err
	}
	return cl, nil
}

// NewClient speaks to an engine already connected to r and w.
func NewClient(r io.Reader, w io.Writer) (*Client, error) {
	cl := &Client{}
	if err := cl.handshake(r, w); err != nil {
		return nil, err
	}
	return cl, nil
}

func (c *Client) handshake(r io.Reader, w io.Writer) error {
	c.read = bufio.NewReader(r)
	c.write = w
	if err := c.send("mancala"); err != nil {
		return err
	}
	for {
		words, err := c.readLine()
		if err != nil {
			return fmt.Errorf("handshake: %w", err)
		}
		switch {
		case len(words) > 2 && words[0] == "id" && words[1] == "name":
			c.Name = strings.Join(words[2:], " ")
		case words[0] == "mancalaok":
			return nil
		}
	}
}

func (c *Client) send(line string) error {
	_, err := fmt.Fprintln(c.write, line)
	return err
}

func (c *Client) readLine() ([]string, error) {
	for {
		line, err := c.read.ReadString('\n')
		if err != nil {
			return nil, err
		}
		if words := strings.Fields(line); len(words) > 0 {
			return words, nil
		}
	}
}

// GetMove sends p to the engine and waits for its move. The context is
// only checked before the request is sent.
func (c *Client) GetMove(ctx context.Context, p *mancala.Position) (mancala.Move, error) {
	if err := ctx.Err(); err != nil {
		return mancala.Move{}, err
	}
	if err := c.send("position board " + notation.FormatBoard(p)); err != nil {
		return mancala.Move{}, err
	}
	if err := c.send("go"); err != nil {
		return mancala.Move{}, err
	}
	for {
		words, err := c.readLine()
		if err != nil {
			return mancala.Move{}, fmt.Errorf("read bestmove: %w", err)
		}
		switch {
		case words[0] == "bestmove" && len(words) == 2:
			return notation.ParseMove(words[1])
		case words[0] == "bestmove":
			return mancala.Move{}, fmt.Errorf("%w: bad bestmove: %q", ErrEngine, strings.Join(words, " "))
		case len(words) > 1 && words[0] == "info" && words[1] == "error":
			return mancala.Move{}, fmt.Errorf("%w: %s", ErrEngine, strings.Join(words[2:], " "))
		}
	}
}

func (c *Client) Close() error {
	if c.write != nil {
		c.send("quit")
	}
	if c.cmd == nil {
		return nil
	}
	c.stdinPipe.Close()
	return c.cmd.Wait()
}
