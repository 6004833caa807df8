// Package stack provides a fixed-capacity LIFO container in three
// variants sharing one contract:
//
//	Resize(n)          一次性初始化,不可并发调用
//	Push(val)          入栈,栈满或未初始化时panic
//	Pop() (val, ok)    出栈,栈空时ok=false
//
// Stack is the single-goroutine baseline, MutexStack serializes every
// operation with one mutex, LFStack coordinates goroutines through a
// single atomic control word and CAS retry loops.
package stack

/*
栈满空条件：
名称			空				满
Stack		index == 0		index == cap
MutexStack	index == 0		index == cap
LFStack		count == 0		count == cap

cap = size - headroom,最后一个slot保留不用。

LFStack控制字ctrl布局：

	ctrl = count<<1 | writer flag

count:有效元素数量,也是下一个空slot的下标。
writer flag:低位,Push进行中时为1,起到写锁作用。
ctrl只在Resize时直接写0,之后每个新值都由一次成功的CAS产生。

push:cas(ctrl, ctrl|1)取得写权限,写入slot[count],
然后cas(ctrl, (count+1)<<1)发布并清除flag,失败则重写重发布。
pop:读ctrl,count==0则栈空返回,先读slot[count-1],
再cas(ctrl, (count-1)<<1),失败则从头重试。

已知缺陷:Pop不检查writer flag,与进行中的Push重叠时
可能读到尚未发布的slot,详见LFStack说明。
*/
