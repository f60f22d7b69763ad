/*

Front end pipeline

Program Text ->
	parse ->
Abstract Syntax Tree (ast) ->
	format ->
Program Text (canonical)

Abstract Syntax Tree (ast) ->
	native backend (not here) ->
Binary Object (obj)

*/
package compiler
