// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/meta"
)

const bashCompletionScript = `# bash completion for tabctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tabctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "add completion diff export import info ls rm reset search ui --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local store="--key -k --backend -b --path --tldr"
    local common="--attrs -a --color -c --filter -f --output -o --sort -s --titles -t"

    case "$cmd" in
        ls|list)
            local opts="$store $common"
            ;;
        add)
            local opts="$store --icon -i"
            ;;
        diff)
            local opts="$store --color -c"
            ;;
        search)
            local opts="--engine -e --tldr"
            ;;
        ui)
            local opts="$store --engine -e"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$store"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
            return 0
            ;;
        --backend|-b)
            COMPREPLY=( $(compgen -W "file memory sqlite postgres s3" -- "$cur") )
            return 0
            ;;
        --path)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    case "$cmd" in
        import|export|diff)
            COMPREPLY=( $(compgen -f -- "$cur") )
            ;;
    esac
    return 0
}

complete -F _tabctl tabctl
`

const zshCompletionScript = `#compdef tabctl

_tabctl() {
  local -a cmds
  cmds=(
    'add:append a shortcut'
    'completion:generate shell completion script'
    'diff:compare the stored shortcuts with a JSON file'
    'export:write the stored shortcuts as JSON'
    'import:replace the stored shortcuts with a JSON file'
    'info:show the backend, key and size of the stored list'
    'ls:list shortcuts'
    'reset:restore the default shortcuts'
    'rm:remove shortcuts by index'
    'search:resolve a search box query to a URL'
    'ui:interactive shortcut view'
  )

  local -a store
  store=(
  '(-k --key)'{-k,--key}'[storage key]:key'
  '(-b --backend)'{-b,--backend}'[storage backend]:backend:(file memory sqlite postgres s3)'
  '--path[data directory or database file]:path:_files'
  '--tldr[show tldr page]'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'tabctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    ls|list)
      _arguments -C $store $common
      ;;
    add)
      _arguments -C $store \
        '(-i --icon)'{-i,--icon}'[icon glyph]:icon' \
        ':name' ':url' '::icon'
      ;;
    rm)
      _arguments -C $store '*:index'
      ;;
    import)
      _arguments -C $store ':file:_files'
      ;;
    export)
      _arguments -C $store '::file:_files'
      ;;
    diff)
      _arguments -C $store \
        '(-c --color)'{-c,--color}'[colour the diff]' \
        ':file:_files'
      ;;
    search)
      _arguments -C \
        '(-e --engine)'{-e,--engine}'[search engine prefix]:engine' \
        '*:query'
      ;;
    ui)
      _arguments -C $store '(-e --engine)'{-e,--engine}'[search engine prefix]:engine'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $store
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _tabctl tabctl
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(out(cmd), bashCompletionScript)
	case "zsh":
		fmt.Fprint(out(cmd), zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(out(cmd), zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(out(cmd), bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: tabctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "tabctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
